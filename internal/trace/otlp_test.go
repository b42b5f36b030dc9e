package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	p, err := NewProvider(context.Background(), Options{})
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Tracer())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestProvider_NilIsUsable(t *testing.T) {
	var p *Provider
	assert.False(t, p.Enabled())
	_, span := p.Tracer().Start(context.Background(), "noop")
	span.End()
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProviderWith_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	p := NewProviderWith(sdktrace.WithSpanProcessor(rec))
	assert.True(t, p.Enabled())
	_, span := p.Tracer().Start(context.Background(), "download")
	span.SetAttributes(Attr("image_id", "3"))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "download", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("gallery.image.id", "3"))
}

func TestAttr_Namespaces(t *testing.T) {
	assert.Equal(t, attribute.String("gallery.file.path", "/tmp/a.jpg"), Attr("file_path", "/tmp/a.jpg"))
	assert.Equal(t, attribute.String("gallery.outcome", "ok"), Attr("outcome", "ok"))
}
