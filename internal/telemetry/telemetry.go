// Package telemetry configures OpenTelemetry tracing for issuepost.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const serviceName = "issuepost"

// Config holds the configuration for telemetry
type Config struct {
	Enabled  bool
	Endpoint string // OTLP/HTTP endpoint, host:port; empty uses the exporter default
}

// Provider manages the telemetry system
type Provider struct {
	enabled bool
	tp      *sdktrace.TracerProvider
}

// NewProvider creates a new telemetry provider. When disabled it returns a
// provider whose tracer is a no-op.
func NewProvider(ctx context.Context, config Config, serviceVersion string) (*Provider, error) {
	if !config.Enabled {
		return &Provider{}, nil
	}

	var opts []otlptracehttp.Option
	if config.Endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(config.Endpoint))
	}
	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(opts...))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(serviceVersion),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return &Provider{enabled: true, tp: tp}, nil
}

// Tracer returns the tracer used for submission spans
func (p *Provider) Tracer() trace.Tracer {
	if !p.enabled {
		return noop.NewTracerProvider().Tracer(serviceName)
	}
	return p.tp.Tracer(serviceName)
}

// Shutdown flushes pending spans and shuts down the telemetry provider
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.enabled {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return p.tp.Shutdown(ctx)
}
