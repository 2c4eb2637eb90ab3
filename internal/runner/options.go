package runner

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/projectdiscovery/logfile-monitor/pkg"
	"github.com/projectdiscovery/logfile-monitor/pkg/agent"
	"github.com/projectdiscovery/logfile-monitor/pkg/monitor"
	"github.com/projectdiscovery/logfile-monitor/pkg/version"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
)

// Options contains the configuration options for a single check
type Options struct {
	monitor.Config

	ConfigFile string
	Timeout    int
	Retries    int

	Verbose bool
	Silent  bool
	NoColor bool
	Version bool
}

// ParseOptions parses the command line flags provided by the monitoring station.
// Settings missing from the flags are taken from the UPTIME_* environment variables,
// then from the -config file. Invalid arguments end the check with a message on stdout.
func ParseOptions() *Options {
	options, err := parseOptions(os.Args[1:]...)
	if err != nil {
		fmt.Printf("Error: %s\n", err)
		os.Exit(int(monitor.StatusNoData))
	}

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version.String())
		os.Exit(0)
	}
	return options
}

func parseOptions(args ...string) (*Options, error) {
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	options := &Options{}
	flagSet := options.flagSet()
	// flags are parsed before goflags writes its default config file, a failed write is not fatal
	if err := flagSet.Parse(args...); err != nil {
		gologger.Warning().Msgf("could not write default flag config: %s", err)
	}

	options.configureOutput()

	options.Config.Merge(pkg.EnvConfig())
	if options.ConfigFile != "" {
		if err := options.loadConfigFrom(options.ConfigFile); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// flagSet registers the check flags on a new goflags set. Check settings default to
// empty so that env values and credentials never end up in the generated flag config.
func (options *Options) flagSet() *goflags.FlagSet {
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`logfile-monitor is an up.time plugin that searches log files on a remote agent`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&options.Dir, "dir", "d", "", "directory to monitor ("+pkg.EnvDir+")"),
		flagSet.StringVarP(&options.FilesRegex, "files-regex", "fr", "", "regex selecting the files to scan ("+pkg.EnvFilesRegex+")"),
		flagSet.StringVarP(&options.SearchRegex, "search-regex", "sr", "", "regex of the lines to report ("+pkg.EnvSearchRegex+")"),
		flagSet.StringVarP(&options.IgnoreRegex, "ignore-regex", "ir", "", "regex of the lines to ignore ("+pkg.EnvIgnoreRegex+")"),
		flagSet.StringVarP(&options.DebugMode, "debug-mode", "dm", "", "debug flag forwarded to the agent script ("+pkg.EnvDebugMode+")"),
	)

	flagSet.CreateGroup("agent", "Agent",
		flagSet.StringVarP(&options.Hostname, "hostname", "host", "", "address of the monitored agent ("+pkg.EnvHostname+")"),
		flagSet.StringVarP(&options.Port, "port", "p", "", "port of the monitored agent, "+agent.DefaultPort+" when empty ("+pkg.EnvPort+")"),
		flagSet.StringVarP(&options.Password, "password", "pw", "", "agent password, used by windows agents only ("+pkg.EnvPassword+")"),
		flagSet.IntVar(&options.Timeout, "timeout", int(agent.DefaultOptions.Timeout/time.Second), "seconds to wait for the agent"),
		flagSet.IntVar(&options.Retries, "retries", agent.DefaultOptions.MaxRetries, "number of times to retry connecting to the agent"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&options.ConfigFile, "config", "", "yaml file with check settings, flags and env take precedence"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only the check output"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
	)
	return flagSet
}

// validateArgs parses args on a throwaway flag set that reports errors instead of
// exiting with status 2, which is reserved for agents rejecting the check.
func validateArgs(args []string) error {
	flagSet := (&Options{}).flagSet()
	flagSet.CommandLine.Init(version.Name, flag.ContinueOnError)
	flagSet.CommandLine.SetOutput(io.Discard)

	if err := flagSet.CommandLine.Parse(args); err != nil && err != flag.ErrHelp {
		return errorutil.NewWithErr(err).Msgf("invalid arguments")
	}
	return nil
}

// AgentOptions returns the agent client settings
func (options *Options) AgentOptions() agent.Options {
	return agent.Options{
		Timeout:    time.Duration(options.Timeout) * time.Second,
		MaxRetries: options.Retries,
		RetryDelay: agent.DefaultOptions.RetryDelay,
	}
}

// configureOutput configures the log output. Logs go to stderr, stdout carries the check result.
func (options *Options) configureOutput() {
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

// loadConfigFrom fills the settings left empty by flags and env from a yaml file
func (options *Options) loadConfigFrom(location string) error {
	data, err := os.ReadFile(location)
	if err != nil {
		return errorutil.NewWithErr(err).Msgf("could not read config file %s", location)
	}
	var fileConfig monitor.Config
	if err := fileutil.Unmarshal(fileutil.YAML, data, &fileConfig); err != nil {
		return errorutil.NewWithErr(err).Msgf("could not parse config file %s", location)
	}
	options.Config.Merge(fileConfig)
	return nil
}
