// Package telemetry exports request and job metrics to an OTEL collector.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "chatter-metrics-service"
	serviceVersion = "1.0.0"
)

type Config struct {
	Enabled  bool
	Endpoint string
	Insecure bool
}

// Provider owns the meter used by the HTTP middleware and the CLI jobs.
type Provider struct {
	meter    metric.Meter
	shutdown func(context.Context) error
}

// New builds an OTLP/gRPC meter provider, or a no-op one when disabled.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return NewNoop(), nil
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return &Provider{
		meter:    provider.Meter(serviceName),
		shutdown: provider.Shutdown,
	}, nil
}

// NewNoop returns a provider whose instruments record nothing.
func NewNoop() *Provider {
	return &Provider{
		meter:    noop.NewMeterProvider().Meter(serviceName),
		shutdown: func(context.Context) error { return nil },
	}
}

// NewWithMeterProvider wraps an existing provider, e.g. one with a manual reader in tests.
// Shutdown is forwarded when mp supports it.
func NewWithMeterProvider(mp metric.MeterProvider) *Provider {
	shutdown := func(context.Context) error { return nil }
	if s, ok := mp.(interface{ Shutdown(context.Context) error }); ok {
		shutdown = s.Shutdown
	}
	return &Provider{
		meter:    mp.Meter(serviceName),
		shutdown: shutdown,
	}
}

func (p *Provider) Meter() metric.Meter {
	return p.meter
}

// Shutdown flushes pending metrics.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.shutdown(ctx)
}
