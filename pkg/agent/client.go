package agent

import "context"

// Client runs commands on a remote up.time agent
type Client interface {
	// Probe runs a plain agent command and returns its raw output
	Probe(ctx context.Context, host, port, command string) (string, error)
	// Invoke runs a custom monitor script on the agent, authenticated by password
	Invoke(ctx context.Context, host, port, password, command, arguments string) (string, error)
}
