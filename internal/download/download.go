// Package download fetches an image over HTTP and saves it as <title>.jpg.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"photogallery/internal/catalog"
	"photogallery/internal/trace"
)

// Extension is appended to every saved file regardless of the image's
// actual format.
const Extension = ".jpg"

// DefaultTimeout bounds a single fetch when none is configured.
const DefaultTimeout = 30 * time.Second

// ErrStatus is returned when the image server answers with a non-2xx status.
var ErrStatus = errors.New("unexpected response status")

// Result describes a completed download.
type Result struct {
	ID          string // per-download id, also on the log line and span
	Path        string
	Bytes       int64
	ContentType string
}

// Downloader retrieves image bytes and writes them into Dir.
type Downloader struct {
	Client  *http.Client
	Dir     string
	Timeout time.Duration

	tracer oteltrace.Tracer
	log    zerolog.Logger
}

// NewDownloader creates a downloader saving into dir. A nil tracer disables spans.
func NewDownloader(dir string, timeout time.Duration, tracer oteltrace.Tracer, log zerolog.Logger) *Downloader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tracer == nil {
		tracer = (*trace.Provider)(nil).Tracer()
	}
	return &Downloader{
		Client:  &http.Client{},
		Dir:     dir,
		Timeout: timeout,
		tracer:  tracer,
		log:     log.With().Str("component", "download").Logger(),
	}
}

// FileName returns the save name for a title: path separators are replaced
// and Extension is appended. An empty title becomes "image".
func FileName(title string) string {
	name := strings.TrimSpace(title)
	name = strings.NewReplacer("/", "-", "\\", "-", "\x00", "").Replace(name)
	if name == "" {
		name = "image"
	}
	return name + Extension
}

// Download fetches img.URL and saves it as FileName(img.Title) in d.Dir.
// A partially written file is removed on failure.
func (d *Downloader) Download(ctx context.Context, img catalog.Image) (Result, error) {
	res := Result{ID: uuid.NewString()}

	ctx, span := d.tracer.Start(ctx, "gallery.download")
	defer span.End()
	span.SetAttributes(
		trace.Attr("download_id", res.ID),
		trace.Attr("image_id", fmt.Sprint(img.ID)),
		trace.Attr("image_title", img.Title),
		trace.Attr("image_url", img.URL),
	)

	logger := d.log.With().
		Str("download_id", res.ID).
		Int("image_id", img.ID).
		Str("url", img.URL).
		Logger()

	err := d.fetchInto(ctx, img, &res)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error().Err(err).Msg("download failed")
		return res, err
	}

	span.SetAttributes(trace.Attr("file_path", res.Path))
	span.SetStatus(codes.Ok, "")
	logger.Info().
		Str("path", res.Path).
		Int64("bytes", res.Bytes).
		Str("content_type", res.ContentType).
		Msg("download saved")
	return res, nil
}

func (d *Downloader) fetchInto(ctx context.Context, img catalog.Image, res *Result) error {
	ctx, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, img.URL, nil)
	if err != nil {
		return fmt.Errorf("download: build request for %q: %w", img.URL, err)
	}
	resp, err := d.Client.Do(req)
	if err != nil {
		return fmt.Errorf("download: fetch %s: %w", img.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("download: fetch %s: %w: %s", img.URL, ErrStatus, resp.Status)
	}
	res.ContentType = resp.Header.Get("Content-Type")

	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("download: create dir %s: %w", d.Dir, err)
	}
	tmp, err := os.CreateTemp(d.Dir, ".download-*")
	if err != nil {
		return fmt.Errorf("download: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	n, copyErr := io.Copy(tmp, resp.Body)
	closeErr := tmp.Close()
	if copyErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("download: read body of %s: %w", img.URL, copyErr)
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("download: write %s: %w", tmpPath, closeErr)
	}

	dest := filepath.Join(d.Dir, FileName(img.Title))
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("download: save %s: %w", dest, err)
	}
	res.Path = dest
	res.Bytes = n
	return nil
}
