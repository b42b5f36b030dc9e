package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PreservesOrder(t *testing.T) {
	c, err := New([]Image{{ID: 3, Title: "c"}, {ID: 1, Title: "a"}, {ID: 2, Title: "b"}})
	require.NoError(t, err)

	require.Equal(t, 3, c.Len())
	assert.Equal(t, 3, c.At(0).ID)
	assert.Equal(t, 1, c.At(1).ID)
	assert.Equal(t, 2, c.At(2).ID)

	i, ok := c.IndexOf(1)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Image{{ID: 1}, {ID: 2}, {ID: 1}})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestNew_CopiesInput(t *testing.T) {
	in := []Image{{ID: 1, Title: "before"}}
	c, err := New(in)
	require.NoError(t, err)

	in[0].Title = "after"
	assert.Equal(t, "before", c.At(0).Title)
}

func TestCatalog_ZeroValueIsEmpty(t *testing.T) {
	var c Catalog
	assert.Equal(t, 0, c.Len())
	_, ok := c.Lookup(1)
	assert.False(t, ok)
	_, ok = c.IndexOf(1)
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	c := MustNew([]Image{{ID: 7, Title: "seven"}})

	img, ok := c.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, "seven", img.Title)

	_, ok = c.Lookup(8)
	assert.False(t, ok)
}

func TestSample_SixImagesInOrder(t *testing.T) {
	c := Sample()
	require.Equal(t, 6, c.Len())
	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, i+1, c.At(i).ID)
		assert.NotEmpty(t, c.At(i).URL)
		assert.NotEmpty(t, c.At(i).Title)
	}
}

func TestParseJSON(t *testing.T) {
	c, err := ParseJSON([]byte(`[
		{"id": 1, "url": "http://x/1.jpg", "title": "One", "description": "first", "date": "2024-01-01"},
		{"id": 2, "url": "http://x/2.jpg", "title": "Two", "description": "second", "date": "whenever"}
	]`))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, Image{ID: 2, URL: "http://x/2.jpg", Title: "Two", Description: "second", Date: "whenever"}, c.At(1))
}

func TestParseJSON_DuplicateIDs(t *testing.T) {
	_, err := ParseJSON([]byte(`[{"id": 1}, {"id": 1}]`))
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestParseYAML(t *testing.T) {
	c, err := ParseYAML([]byte(`
- id: 10
  url: http://x/10.jpg
  title: Ten
  description: tenth
  date: "2023-10-31"
- id: 11
  url: http://x/11.jpg
  title: Eleven
`))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "2023-10-31", c.At(0).Date)
	assert.Equal(t, "Eleven", c.At(1).Title)
}

func TestParseYAML_UnknownField(t *testing.T) {
	_, err := ParseYAML([]byte("- id: 1\n  colour: red\n"))
	require.Error(t, err)
}

func TestParseYAML_EmptyDocument(t *testing.T) {
	c, err := ParseYAML([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"id": 1, "url": "https://x/1.jpg", "title": "A"}]`), 0o644))
	c, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	yamlPath := filepath.Join(dir, "catalog.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- id: 1\n  url: https://x/1.jpg\n  title: A\n- id: 2\n  url: https://x/2.jpg\n  title: B\n"), 0o644))
	c, err = LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = LoadFile(filepath.Join(dir, "catalog.toml"))
	require.Error(t, err)

	txtPath := filepath.Join(dir, "catalog.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("[]"), 0o644))
	_, err = LoadFile(txtPath)
	require.ErrorContains(t, err, "unsupported extension")
}

func TestLoadFile_RejectsInvalidImages(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
	}{
		{"missing url", `[{"id": 1, "title": "A"}]`},
		{"relative url", `[{"id": 1, "url": "photos/1.jpg", "title": "A"}]`},
		{"ftp url", `[{"id": 1, "url": "ftp://x/1.jpg", "title": "A"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "catalog.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := LoadFile(path)
			require.ErrorContains(t, err, "id 1")
		})
	}
}

func TestValidate_Sample(t *testing.T) {
	require.NoError(t, Validate(Sample()))
	require.NoError(t, Validate(Catalog{}))
}
