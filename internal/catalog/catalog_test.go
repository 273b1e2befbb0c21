package catalog

import (
	"context"
	"testing"

	"go_5_memory_game/internal/config"
	"go_5_memory_game/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.CatalogConfig
		want    Catalog
		wantErr bool
	}{
		{name: "default is static", cfg: config.CatalogConfig{}, want: &Static{}},
		{name: "probe", cfg: config.CatalogConfig{Source: "probe", BaseURL: "http://assets"}, want: &Probe{}},
		{name: "probe without base url", cfg: config.CatalogConfig{Source: "probe"}, wantErr: true},
		{name: "manifest", cfg: config.CatalogConfig{Source: "Manifest", ManifestURL: "http://assets/words.json"}, want: &Manifest{}},
		{name: "manifest without url", cfg: config.CatalogConfig{Source: "manifest"}, wantErr: true},
		{name: "file", cfg: config.CatalogConfig{Source: "file", ManifestPath: "words.xlsx"}, want: &File{}},
		{name: "unknown", cfg: config.CatalogConfig{Source: "s3"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.cfg, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestStatic_Entries(t *testing.T) {
	c := NewStatic([]string{"cat", "dog", "cat", "giraffe"}, "de", "images", "svg")

	entries, err := c.Entries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.CatalogEntry{
		{Label: "Katze", ImageRef: "images/cat.svg"},
		{Label: "Hund", ImageRef: "images/dog.svg"},
		{Label: "Giraffe", ImageRef: "images/giraffe.svg"},
	}, entries)

	// callers may not mutate the catalog
	entries[0].Label = "Maus"
	again, _ := c.Entries(context.Background())
	assert.Equal(t, "Katze", again[0].Label)
}

func TestNew_StaticUsesDefaultWords(t *testing.T) {
	c, err := New(config.CatalogConfig{Language: "de", ImageDir: "images", ImageExt: ".svg"}, nil)
	require.NoError(t, err)

	entries, err := c.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, len(DefaultWords))
	assert.Equal(t, model.CatalogEntry{Label: "Ball", ImageRef: "images/ball.svg"}, entries[0])
	assert.Equal(t, model.CatalogEntry{Label: "Fenster", ImageRef: "images/window.svg"}, entries[19])
}
