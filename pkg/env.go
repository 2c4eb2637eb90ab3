package pkg

import (
	"github.com/projectdiscovery/logfile-monitor/pkg/monitor"
	envutil "github.com/projectdiscovery/utils/env"
)

// Environment variables set by the up.time monitoring station
const (
	EnvDir         = "UPTIME_DIR"
	EnvFilesRegex  = "UPTIME_FILES_REGEX"
	EnvSearchRegex = "UPTIME_SEARCH_REGEX"
	EnvIgnoreRegex = "UPTIME_IGNORE_REGEX"
	EnvDebugMode   = "UPTIME_DEBUG_MODE"
	EnvHostname    = "UPTIME_HOSTNAME"
	EnvPort        = "UPTIME_PORT"
	EnvPassword    = "UPTIME_PASSWORD"
)

// EnvConfig reads the check configuration from the environment.
// Unset variables are left empty.
func EnvConfig() monitor.Config {
	return monitor.Config{
		Dir:         envutil.GetEnvOrDefault(EnvDir, ""),
		FilesRegex:  envutil.GetEnvOrDefault(EnvFilesRegex, ""),
		SearchRegex: envutil.GetEnvOrDefault(EnvSearchRegex, ""),
		IgnoreRegex: envutil.GetEnvOrDefault(EnvIgnoreRegex, ""),
		DebugMode:   envutil.GetEnvOrDefault(EnvDebugMode, ""),
		Hostname:    envutil.GetEnvOrDefault(EnvHostname, ""),
		Port:        envutil.GetEnvOrDefault(EnvPort, ""),
		Password:    envutil.GetEnvOrDefault(EnvPassword, ""),
	}
}
