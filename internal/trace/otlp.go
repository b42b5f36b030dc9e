// Package trace configures OpenTelemetry tracing for the gallery.
package trace

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName is the tracer name used for gallery spans.
const InstrumentationName = "photogallery"

// Options configures the exporter. An empty Endpoint disables export.
type Options struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// Provider owns the tracer provider for the process.
type Provider struct {
	provider *sdktrace.TracerProvider // nil when disabled
	tracer   oteltrace.Tracer
}

// NewProvider creates an OTLP/HTTP exporting provider, or a no-op provider
// when opts.Endpoint is empty.
func NewProvider(ctx context.Context, opts Options) (*Provider, error) {
	if opts.Endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(InstrumentationName)}, nil
	}

	clientOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		clientOpts = append(clientOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("trace: create otlp exporter: %w", err)
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = InstrumentationName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return NewProviderWith(sdktrace.WithBatcher(exporter), sdktrace.WithResource(res)), nil
}

// NewProviderWith builds a provider from explicit sdk options, e.g. a span
// recorder registered with sdktrace.WithSpanProcessor.
func NewProviderWith(opts ...sdktrace.TracerProviderOption) *Provider {
	tp := sdktrace.NewTracerProvider(opts...)
	return &Provider{provider: tp, tracer: tp.Tracer(InstrumentationName)}
}

// Tracer returns the gallery tracer. Safe on a nil Provider.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(InstrumentationName)
	}
	return p.tracer
}

// Enabled reports whether spans are exported anywhere.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}

// Attr maps a short gallery attribute name into the gallery.* namespace.
func Attr(key, value string) attribute.KeyValue {
	switch key {
	case "image_id":
		key = "gallery.image.id"
	case "image_title":
		key = "gallery.image.title"
	case "image_url":
		key = "gallery.image.url"
	case "file_path":
		key = "gallery.file.path"
	case "download_id":
		key = "gallery.download.id"
	default:
		key = "gallery." + key
	}
	return attribute.String(key, value)
}
