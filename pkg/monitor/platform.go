package monitor

import (
	stringsutil "github.com/projectdiscovery/utils/strings"
)

// Platform is the operating system family of the monitored agent
type Platform uint8

const (
	PlatformPOSIX Platform = iota
	PlatformWindows
)

// ProbeCommand is sent to the agent to learn which OS it runs on
const ProbeCommand = "ver"

func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	default:
		return "posix"
	}
}

// Classify maps the output of the agent "ver" command to a platform.
// Anything that does not mention windows (in any case) is treated as POSIX.
func Classify(probe string) Platform {
	if stringsutil.ContainsAnyI(probe, "windows") {
		return PlatformWindows
	}
	return PlatformPOSIX
}
