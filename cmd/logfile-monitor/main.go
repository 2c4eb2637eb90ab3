package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/logfile-monitor/internal/runner"
	"github.com/projectdiscovery/logfile-monitor/pkg/agent"
)

func main() {
	options := runner.ParseOptions()

	monitorRunner, err := runner.NewRunner(options.Config, agent.NewTCPClient(options.AgentOptions()))
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s\n", err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup close handler
	go func() {
		<-c
		gologger.Warning().Msg("interrupted, cancelling check")
		cancel()
	}()

	result, err := monitorRunner.Run(ctx)
	if err != nil {
		gologger.Error().Msgf("Could not run logfile-monitor: %s\n", err)
	}

	// stdout carries the agent output for the monitoring station, exactly as received
	fmt.Print(result.Output)
	os.Exit(int(result.Status))
}
