package download

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"photogallery/internal/catalog"
	"photogallery/internal/trace"
)

var fakeJPEG = []byte{0xff, 0xd8, 0xff, 0xe0, 'f', 'a', 'k', 'e'}

func imageServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(fakeJPEG)
	})
	mux.HandleFunc("/photo.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("png-bytes"))
	})
	mux.HandleFunc("/missing.jpg", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/slow.jpg", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestDownloader(t *testing.T, srv *httptest.Server, log zerolog.Logger) (*Downloader, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	p := trace.NewProviderWith(sdktrace.WithSpanProcessor(rec))
	d := NewDownloader(t.TempDir(), time.Second, p.Tracer(), log)
	d.Client = srv.Client()
	return d, rec
}

func TestFileName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Forest Lake", "Forest Lake.jpg"},
		{"  padded  ", "padded.jpg"},
		{"a/b\\c", "a-b-c.jpg"},
		{"", "image.jpg"},
		{"already.jpg", "already.jpg.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.title))
		})
	}
}

func TestDownload_SavesTitleDotJPG(t *testing.T) {
	srv := imageServer(t)
	d, rec := newTestDownloader(t, srv, zerolog.Nop())

	res, err := d.Download(context.Background(), catalog.Image{ID: 2, URL: srv.URL + "/ok.jpg", Title: "Forest Lake"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(d.Dir, "Forest Lake.jpg"), res.Path)
	assert.Equal(t, int64(len(fakeJPEG)), res.Bytes)
	assert.Equal(t, "image/jpeg", res.ContentType)
	assert.NotEmpty(t, res.ID)

	got, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, fakeJPEG, got)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "gallery.download", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
}

func TestDownload_KeepsJPGExtensionForOtherFormats(t *testing.T) {
	srv := imageServer(t)
	d, _ := newTestDownloader(t, srv, zerolog.Nop())

	res, err := d.Download(context.Background(), catalog.Image{ID: 1, URL: srv.URL + "/photo.png", Title: "Ocean View"})
	require.NoError(t, err)
	assert.Equal(t, "Ocean View.jpg", filepath.Base(res.Path))
	assert.Equal(t, "image/png", res.ContentType)
}

func TestDownload_NotFound(t *testing.T) {
	srv := imageServer(t)
	var logs bytes.Buffer
	d, rec := newTestDownloader(t, srv, zerolog.New(&logs))

	_, err := d.Download(context.Background(), catalog.Image{ID: 3, URL: srv.URL + "/missing.jpg", Title: "Gone"})
	require.ErrorIs(t, err, ErrStatus)

	_, statErr := os.Stat(filepath.Join(d.Dir, "Gone.jpg"))
	assert.True(t, os.IsNotExist(statErr))

	assert.Contains(t, logs.String(), "download failed")
	assert.Contains(t, logs.String(), `"image_id":3`)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestDownload_NetworkError(t *testing.T) {
	srv := imageServer(t)
	url := srv.URL + "/ok.jpg"
	d, _ := newTestDownloader(t, srv, zerolog.Nop())
	srv.Close()

	_, err := d.Download(context.Background(), catalog.Image{ID: 1, URL: url, Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download: fetch")
}

func TestDownload_Timeout(t *testing.T) {
	srv := imageServer(t)
	d, _ := newTestDownloader(t, srv, zerolog.Nop())
	d.Timeout = 50 * time.Millisecond

	_, err := d.Download(context.Background(), catalog.Image{ID: 1, URL: srv.URL + "/slow.jpg", Title: "slow"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDownload_InvalidURL(t *testing.T) {
	d := NewDownloader(t.TempDir(), 0, nil, zerolog.Nop())
	_, err := d.Download(context.Background(), catalog.Image{ID: 1, URL: "://bad", Title: "bad"})
	require.Error(t, err)
}

func TestDownload_LeavesNoTempFiles(t *testing.T) {
	srv := imageServer(t)
	d, _ := newTestDownloader(t, srv, zerolog.Nop())

	_, err := d.Download(context.Background(), catalog.Image{ID: 1, URL: srv.URL + "/ok.jpg", Title: "A"})
	require.NoError(t, err)
	_, _ = d.Download(context.Background(), catalog.Image{ID: 2, URL: srv.URL + "/missing.jpg", Title: "B"})

	entries, err := os.ReadDir(d.Dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"A.jpg"}, names)
}

func TestNewDownloader_Defaults(t *testing.T) {
	d := NewDownloader("dir", 0, nil, zerolog.Nop())
	assert.Equal(t, DefaultTimeout, d.Timeout)
	assert.NotNil(t, d.Client)
}
