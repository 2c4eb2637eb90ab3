package runner

import (
	"context"
	"net"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/logfile-monitor/pkg/agent"
	"github.com/projectdiscovery/logfile-monitor/pkg/monitor"
	errorutil "github.com/projectdiscovery/utils/errors"
	"github.com/rs/xid"
)

// Runner performs one log file check against a remote agent
type Runner struct {
	config monitor.Config
	client agent.Client
	runID  string
}

// NewRunner creates a runner for config using client for the remote calls
func NewRunner(config monitor.Config, client agent.Client) (*Runner, error) {
	if client == nil {
		return nil, errorutil.New("agent client is required")
	}
	return &Runner{
		config: config,
		client: client,
		runID:  xid.New().String(),
	}, nil
}

// Run probes the agent platform, runs the log monitor script and interprets its output.
// Check failures are reported through the returned result. The error is only set
// when ctx is done before the check completes, the result then explains the interruption.
func (r *Runner) Run(ctx context.Context) (*monitor.Result, error) {
	if err := ctx.Err(); err != nil {
		return monitor.Interrupted(), err
	}
	address := net.JoinHostPort(r.config.Hostname, r.config.Port)

	gologger.Verbose().Msgf("[%s] probing agent %s", r.runID, address)
	probe, err := r.client.Probe(ctx, r.config.Hostname, r.config.Port, monitor.ProbeCommand)
	if err != nil {
		if ctx.Err() != nil {
			return monitor.Interrupted(), errorutil.NewWithErr(ctx.Err()).Msgf("probe of %s interrupted", address)
		}
		gologger.Error().Msgf("[%s] could not probe agent %s: %s", r.runID, address, err)
		probe = ""
	}
	if probe == "" {
		return monitor.ProbeFailed(), nil
	}

	platform := monitor.Classify(probe)
	plan := monitor.NewCommandSpec(platform, r.config)
	gologger.Verbose().Msgf("[%s] agent %s runs on %s, using %s", r.runID, address, platform, plan.Command)
	gologger.Debug().Msgf("[%s] arguments: %s", r.runID, plan.Arguments)

	output, err := r.client.Invoke(ctx, r.config.Hostname, r.config.Port, plan.Password, plan.Command, plan.Arguments)
	if err != nil {
		if ctx.Err() != nil {
			return monitor.Interrupted(), errorutil.NewWithErr(ctx.Err()).Msgf("check on %s interrupted", address)
		}
		gologger.Error().Msgf("[%s] could not run %s on agent %s: %s", r.runID, plan.Command, address, err)
		output = ""
	}

	result := monitor.Interpret(output)
	gologger.Verbose().Msgf("[%s] check finished with status %s", r.runID, result.Status)
	return result, nil
}
