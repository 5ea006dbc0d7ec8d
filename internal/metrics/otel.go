package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	defaultServiceName = "nhl-results-service"
	otlpPushInterval   = 15 * time.Second
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup builds a meter provider that always serves a Prometheus scrape handler
// and also pushes over OTLP/HTTP when an endpoint is configured. A disabled
// config yields an in-memory Recorder, no handler and a no-op shutdown.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	readers, handler, err := buildReaders(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	res, err := resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts := make([]sdkmetric.Option, 0, len(readers)+1)
	for _, reader := range readers {
		opts = append(opts, sdkmetric.WithReader(reader))
	}
	opts = append(opts, sdkmetric.WithResource(res))
	provider := sdkmetric.NewMeterProvider(opts...)

	inst, err := instrumentFactory(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, err
	}

	return newRecorder(inst), handler, provider.Shutdown, nil
}

func buildReaders(ctx context.Context, cfg TelemetryConfig) ([]sdkmetric.Reader, http.Handler, error) {
	promReader, handler, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}
	readers := []sdkmetric.Reader{promReader}

	if cfg.OtlpEndpoint == "" {
		return readers, handler, nil
	}
	otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
	if err != nil {
		return nil, nil, err
	}
	return append(readers, otlpReader), handler, nil
}

// prometheusComponents uses a private registry so repeated setups never collide
// on the global one.
func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	exporter, err := promexporter.New(
		promexporter.WithRegisterer(reg),
		promexporter.WithoutUnits(),
		promexporter.WithoutScopeInfo(),
	)
	if err != nil {
		return nil, nil, err
	}
	return exporter, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(otlpPushInterval)), nil
}
