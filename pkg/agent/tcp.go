package agent

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/utils/conversion"
	errorutil "github.com/projectdiscovery/utils/errors"
)

const (
	// DefaultPort is the port the up.time agent listens on
	DefaultPort = "9998"
	// MaxResponseSize is the default cap on how much agent output is read
	MaxResponseSize = 10 << 20
)

// Options tunes the TCP agent client
type Options struct {
	Timeout         time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
	MaxResponseSize int64
}

// DefaultOptions holds the flag defaults. NewTCPClient falls back to its
// Timeout, RetryDelay and MaxResponseSize when they are unset.
var DefaultOptions = Options{
	Timeout:         30 * time.Second,
	MaxRetries:      2,
	RetryDelay:      200 * time.Millisecond,
	MaxResponseSize: MaxResponseSize,
}

// TCPClient speaks the line based up.time agent protocol: one command line
// is written, the agent answers and closes the connection.
type TCPClient struct {
	options Options
	dialer  *net.Dialer
}

var _ Client = (*TCPClient)(nil)

// NewTCPClient creates a new agent client
func NewTCPClient(options Options) *TCPClient {
	if options.Timeout <= 0 {
		options.Timeout = DefaultOptions.Timeout
	}
	if options.MaxRetries < 0 {
		options.MaxRetries = 0
	}
	if options.RetryDelay <= 0 {
		options.RetryDelay = DefaultOptions.RetryDelay
	}
	if options.MaxResponseSize <= 0 {
		options.MaxResponseSize = DefaultOptions.MaxResponseSize
	}
	return &TCPClient{
		options: options,
		dialer:  &net.Dialer{Timeout: options.Timeout},
	}
}

// Probe sends command as is
func (c *TCPClient) Probe(ctx context.Context, host, port, command string) (string, error) {
	gologger.Verbose().Msgf("probing agent %s with %q", net.JoinHostPort(host, portOrDefault(port)), command)
	return c.send(ctx, host, port, command)
}

// Invoke sends an rexec request for command with its argument string
func (c *TCPClient) Invoke(ctx context.Context, host, port, password, command, arguments string) (string, error) {
	gologger.Verbose().Msgf("running %s on agent %s", command, net.JoinHostPort(host, portOrDefault(port)))
	return c.send(ctx, host, port, RexecLine(password, command, arguments))
}

// RexecLine builds the agent request for a custom monitor script
func RexecLine(password, command, arguments string) string {
	return strings.Join([]string{"rexec", password, command, arguments}, " ")
}

func (c *TCPClient) send(ctx context.Context, host, port, line string) (string, error) {
	address := net.JoinHostPort(host, portOrDefault(port))

	conn, err := c.dial(ctx, address)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = conn.Close()
	}()

	if err := conn.SetDeadline(time.Now().Add(c.options.Timeout)); err != nil {
		return "", errorutil.NewWithErr(err).Msgf("could not set deadline for %s", address)
	}
	// unblock pending reads and writes once ctx is done
	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	if _, err := io.WriteString(conn, line+"\n"); err != nil {
		return "", errorutil.NewWithErr(err).Msgf("could not write request to %s", address)
	}

	limit := c.options.MaxResponseSize
	data, err := io.ReadAll(io.LimitReader(conn, limit+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", errorutil.NewWithErr(ctxErr).Msgf("request to %s cancelled", address)
		}
		// the agent may keep the connection open after answering
		if len(data) == 0 || !errors.Is(err, os.ErrDeadlineExceeded) {
			return "", errorutil.NewWithErr(err).Msgf("could not read response from %s", address)
		}
		gologger.Warning().Msgf("timed out reading from %s, relaying the %d bytes received", address, len(data))
	}
	if int64(len(data)) > limit {
		gologger.Warning().Msgf("response from %s exceeds %d bytes, output truncated", address, limit)
		data = data[:limit]
	}
	return conversion.String(data), nil
}

func (c *TCPClient) dial(ctx context.Context, address string) (net.Conn, error) {
	maxAttempts := c.options.MaxRetries + 1

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		conn, err := c.dialer.DialContext(ctx, "tcp", address)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == maxAttempts {
			break
		}

		gologger.Warning().Msgf("error connecting to agent %s (attempt %d/%d): %v, retrying...", address, attempt, maxAttempts, err)
		select {
		case <-ctx.Done():
			return nil, errorutil.NewWithErr(ctx.Err()).Msgf("connection to %s cancelled", address)
		case <-time.After(c.options.RetryDelay):
		}
	}
	return nil, errorutil.NewWithErr(lastErr).Msgf("could not connect to agent %s", address)
}

func portOrDefault(port string) string {
	if port == "" {
		return DefaultPort
	}
	return port
}
