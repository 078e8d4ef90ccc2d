package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/croneill/issuepost/internal/github"
	"github.com/croneill/issuepost/internal/telemetry"
)

func setupContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	// Setup graceful shutdown
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		log.Println("Interrupt signal detected, shutting down gracefully...")
		cancel()
		<-interrupt
		log.Fatal("Forcing shutdown")
	}()

	return ctx
}

func createIssueClient(owner, repo string) (*github.Client, error) {
	opts := []github.ClientOption{}
	if len(cfg.Proxy) > 0 {
		opts = append(opts, github.WithProxy(cfg.Proxy))
	}

	timeout := cfg.Timeout
	if requestTimeout != 0 {
		timeout = requestTimeout
	}
	if timeout != 0 {
		opts = append(opts, github.WithTimeout(timeout))
	}

	return github.NewClient(cfg.Token, owner, repo, opts...)
}

func createTelemetryProvider(ctx context.Context) (*telemetry.Provider, error) {
	telemetryConfig := telemetry.Config{
		Enabled:  cfg.TelemetryEnabled,
		Endpoint: cfg.TelemetryEndpoint,
	}
	return telemetry.NewProvider(ctx, telemetryConfig, version)
}
