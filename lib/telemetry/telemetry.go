package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
)

var shutdownFuncs []func(context.Context) error

// Setup installs the global tracer and meter providers. When no OTLP endpoint
// is configured at all the global no-op providers are left in place.
func Setup(ctx context.Context, serviceName string, config config) error {
	if !config.Otlp.enabled() {
		slog.InfoContext(ctx, "no otlp endpoint configured, telemetry export disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*15)
	defer cancel()

	r, err := newResource(serviceName)
	if err != nil {
		return err
	}

	if config.Otlp.Traces.enabled() {
		tracerProvider, err := newTraceProvider(ctx, r, config)
		if err != nil {
			return err
		}
		otel.SetTracerProvider(tracerProvider)
		shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	}

	if config.Otlp.Metrics.enabled() {
		meterProvider, err := newMetricProvider(ctx, r, config)
		if err != nil {
			return err
		}
		otel.SetMeterProvider(meterProvider)
		shutdownFuncs = append(shutdownFuncs, meterProvider.Shutdown)
	}

	return nil
}

// Shutdown flushes and stops everything Setup started.
func Shutdown(ctx context.Context) error {
	var errlist []error
	for _, shutdown := range shutdownFuncs {
		err := shutdown(ctx)
		if err != nil {
			errlist = append(errlist, err)
		}
	}
	shutdownFuncs = nil
	return errors.Join(errlist...)
}
