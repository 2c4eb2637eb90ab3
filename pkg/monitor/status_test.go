package monitor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name       string
		output     string
		wantStatus Status
		wantOutput string
	}{
		{name: "empty", output: "", wantStatus: StatusNoData, wantOutput: MessageResultEmpty},
		{name: "sentinel", output: "ERR", wantStatus: StatusRejected, wantOutput: MessageRejected},
		{name: "padded sentinel", output: " ERR\n", wantStatus: StatusRejected, wantOutput: MessageRejected},
		{name: "sentinel with crlf", output: "\r\nERR\r\n", wantStatus: StatusRejected, wantOutput: MessageRejected},
		{name: "sentinel inside text", output: "ERR: disk full", wantStatus: StatusOK, wantOutput: "ERR: disk full"},
		{name: "lower case sentinel", output: "err", wantStatus: StatusOK, wantOutput: "err"},
		{name: "whitespace only", output: " \n", wantStatus: StatusOK, wantOutput: " \n"},
		{name: "matches", output: "OK: 3 matches found", wantStatus: StatusOK, wantOutput: "OK: 3 matches found"},
		{name: "verbatim with newlines", output: "line1\nline2\n", wantStatus: StatusOK, wantOutput: "line1\nline2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.output)
			require.Equal(t, tt.wantStatus, got.Status)
			require.Equal(t, tt.wantOutput, got.Output)
		})
	}
}

func TestProbeFailed(t *testing.T) {
	got := ProbeFailed()
	require.Equal(t, StatusNoData, got.Status)
	require.Contains(t, got.Output, "Is the agent running?")
}

func TestInterrupted(t *testing.T) {
	got := Interrupted()
	require.Equal(t, StatusNoData, got.Status)
	require.Equal(t, MessageInterrupted, got.Output)
}

func TestConfigMerge(t *testing.T) {
	cfg := Config{Dir: "/var/log", Port: "9998"}
	cfg.Merge(Config{Dir: "/tmp", Hostname: "web01", Port: "1234", DebugMode: "1"})

	require.Equal(t, Config{Dir: "/var/log", Hostname: "web01", Port: "9998", DebugMode: "1"}, cfg)
}
