package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"photogallery/internal/jsonutil"
)

var validate = validator.New()

// LoadFile reads a catalog from a JSON (.json) or YAML (.yaml, .yml) file.
// The document is a top-level list of images in display order. Every image
// must carry an absolute http(s) URL.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var c Catalog
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		c, err = ParseJSON(data)
	case ".yaml", ".yml":
		c, err = ParseYAML(data)
	default:
		return Catalog{}, fmt.Errorf("catalog: %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return Catalog{}, err
	}
	if err := Validate(c); err != nil {
		return Catalog{}, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Validate checks each image against its struct tags.
func Validate(c Catalog) error {
	for i, img := range c.images {
		if err := validate.Struct(img); err != nil {
			return fmt.Errorf("image %d (id %d): %w", i, img.ID, err)
		}
	}
	return nil
}

// ParseJSON decodes a JSON list of images.
func ParseJSON(data []byte) (Catalog, error) {
	images, err := jsonutil.UnmarshalArrayAllowEmpty[Image](data, "catalog: decode json")
	if err != nil {
		return Catalog{}, err
	}
	return New(images)
}

// ParseYAML decodes a YAML list of images. Unknown keys are rejected;
// an empty document yields an empty catalog.
func ParseYAML(data []byte) (Catalog, error) {
	var images []Image
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&images); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	return New(images)
}
