package monitor

import "strings"

// Status is the process exit code reported to the monitoring station
type Status int

const (
	StatusOK       Status = 0
	StatusNoData   Status = 1
	StatusRejected Status = 2
)

// RejectedSentinel is what the agent answers when it refuses the call
const RejectedSentinel = "ERR"

const (
	MessageProbeEmpty  = "Error: no lines returned from 'ver'. Is the agent running?"
	MessageResultEmpty = "Error: No lines returned from agent."
	MessageRejected    = "Error: Output received: 'ERR'. The agent may not be configured correctly. Check the password?"
	MessageInterrupted = "Error: check interrupted before the agent answered."
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoData:
		return "no-data"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result is the text to print and the exit code of one check
type Result struct {
	Output string
	Status Status
}

// ProbeFailed is the result when the platform probe returned nothing
func ProbeFailed() *Result {
	return &Result{Output: MessageProbeEmpty, Status: StatusNoData}
}

// Interrupted is the result when the check is cancelled before it completes
func Interrupted() *Result {
	return &Result{Output: MessageInterrupted, Status: StatusNoData}
}

// Interpret classifies the raw output of the main invocation
func Interpret(output string) *Result {
	switch {
	case output == "":
		return &Result{Output: MessageResultEmpty, Status: StatusNoData}
	case strings.TrimSpace(output) == RejectedSentinel:
		return &Result{Output: MessageRejected, Status: StatusRejected}
	default:
		return &Result{Output: output, Status: StatusOK}
	}
}
