package monitor

const (
	// WindowsCommand is the script alias registered in the Windows agent
	WindowsCommand = "log-file-monitor"
	// PosixCommand is the script path installed with the POSIX agent
	PosixCommand = "/opt/uptime-agent/scripts/log-file-monitor.pl"
	// PosixPassword replaces the configured password on POSIX agents.
	// The rexec handler of the POSIX script expects this fixed value.
	PosixPassword = "log-file-monitor"
)

// CommandSpec is everything needed for the main invocation
type CommandSpec struct {
	Command   string
	Password  string
	Arguments string
}

// NewCommandSpec selects the command and password for the platform and
// encodes the check arguments from cfg.
func NewCommandSpec(platform Platform, cfg Config) CommandSpec {
	plan := CommandSpec{
		Arguments: EncodeArguments(cfg),
	}
	switch platform {
	case PlatformWindows:
		plan.Command = WindowsCommand
		plan.Password = cfg.Password
	default:
		plan.Command = PosixCommand
		plan.Password = PosixPassword
	}
	return plan
}
