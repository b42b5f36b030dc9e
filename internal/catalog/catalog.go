// Package catalog holds the ordered, read-only set of images the gallery shows.
package catalog

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when two images share an id.
var ErrDuplicateID = errors.New("duplicate image id")

// Image is a single gallery entry. Date is display-only and never parsed.
type Image struct {
	ID          int    `json:"id" yaml:"id"`
	URL         string `json:"url" yaml:"url" validate:"required,http_url"`
	Title       string `json:"title" yaml:"title" validate:"max=200"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
}

// Catalog is an immutable, ordered sequence of images.
// The zero value is an empty catalog.
type Catalog struct {
	images []Image
	index  map[int]int // id -> position
}

// New builds a catalog from images, preserving order.
// The input slice is copied; later changes to it do not affect the catalog.
func New(images []Image) (Catalog, error) {
	c := Catalog{
		images: make([]Image, len(images)),
		index:  make(map[int]int, len(images)),
	}
	for i, img := range images {
		if _, dup := c.index[img.ID]; dup {
			return Catalog{}, fmt.Errorf("catalog: image %d at position %d: %w", img.ID, i, ErrDuplicateID)
		}
		c.images[i] = img
		c.index[img.ID] = i
	}
	return c, nil
}

// MustNew is like New but panics on error. Intended for literal catalogs.
func MustNew(images []Image) Catalog {
	c, err := New(images)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of images.
func (c Catalog) Len() int {
	return len(c.images)
}

// At returns the image at position i. It panics if i is out of range.
func (c Catalog) At(i int) Image {
	return c.images[i]
}

// IndexOf returns the position of the image with the given id.
func (c Catalog) IndexOf(id int) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// Lookup returns the image with the given id.
func (c Catalog) Lookup(id int) (Image, bool) {
	i, ok := c.index[id]
	if !ok {
		return Image{}, false
	}
	return c.images[i], true
}
