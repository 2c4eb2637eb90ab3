package monitor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		probe string
		want  Platform
	}{
		{name: "windows banner", probe: "Microsoft Windows [Version 10.0]", want: PlatformWindows},
		{name: "upper case", probe: "WINDOWS SERVER 2019", want: PlatformWindows},
		{name: "mixed case", probe: "wInDoWs", want: PlatformWindows},
		{name: "windows at start", probe: "windows agent 5.0", want: PlatformWindows},
		{name: "linux", probe: "Linux version 5.15.0-91-generic", want: PlatformPOSIX},
		{name: "solaris", probe: "SunOS 5.11 11.4.0.15.0 i86pc", want: PlatformPOSIX},
		{name: "partial word", probe: "window", want: PlatformPOSIX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.probe))
		})
	}
}

func TestPlatformString(t *testing.T) {
	require.Equal(t, "windows", PlatformWindows.String())
	require.Equal(t, "posix", PlatformPOSIX.String())
}
