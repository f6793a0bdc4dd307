package telemetry

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNew_DisabledIsNoop(t *testing.T) {
	p, err := New(context.Background(), Config{Enabled: false, Endpoint: "collector:4317"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counter, err := p.Meter().Int64Counter("noop_total")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counter.Add(context.Background(), 1)

	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestNewWithMeterProvider_Records(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	p := NewWithMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	counter, err := p.Meter().Int64Counter("jobs_total")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counter.Add(context.Background(), 3)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(rm.ScopeMetrics) != 1 || len(rm.ScopeMetrics[0].Metrics) != 1 {
		t.Fatalf("expected one metric, got %+v", rm.ScopeMetrics)
	}

	sum, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected int64 sum, got %T", rm.ScopeMetrics[0].Metrics[0].Data)
	}
	if len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 3 {
		t.Fatalf("expected value 3, got %+v", sum.DataPoints)
	}
}

func TestNewWithMeterProvider_ForwardsShutdown(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	p := NewWithMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err == nil {
		t.Fatalf("expected collect to fail after shutdown")
	}
}
