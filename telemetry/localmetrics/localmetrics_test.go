package localmetrics

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestNew(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if ListCounter() == nil {
		t.Error("ListCounter() returned nil")
	}
	if GetCounter() == nil {
		t.Error("GetCounter() returned nil")
	}
	if SaveCounter() == nil {
		t.Error("SaveCounter() returned nil")
	}
	if CreateCounter() == nil {
		t.Error("CreateCounter() returned nil")
	}
	if RenameCounter() == nil {
		t.Error("RenameCounter() returned nil")
	}
	if DeleteCounter() == nil {
		t.Error("DeleteCounter() returned nil")
	}
	if ActiveGauge() == nil {
		t.Error("ActiveGauge() returned nil")
	}
}

func TestSaveCounter(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	SaveCounter().Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	err = reader.Collect(ctx, &rm)
	if err != nil {
		t.Fatalf("Failed to collect metrics: %v", err)
	}

	found := false
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "notebook.save.count" {
				found = true
				break
			}
		}
	}

	if !found {
		t.Error("Save counter metric was not recorded")
	}
}

func TestActiveGauge(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	ActiveGauge().Record(ctx, 42)

	var rm metricdata.ResourceMetrics
	err = reader.Collect(ctx, &rm)
	if err != nil {
		t.Fatalf("Failed to collect metrics: %v", err)
	}

	found := false
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "notebook.active.gauge" {
				found = true
				break
			}
		}
	}

	if !found {
		t.Error("Active gauge metric was not recorded")
	}
}
