package catalog

import (
	"context"

	"go_5_memory_game/internal/model"
)

// Static serves a fixed word list without touching the network.
type Static struct {
	entries []model.CatalogEntry
}

func NewStatic(names []string, lang, imageDir, imageExt string) *Static {
	entries := make([]model.CatalogEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, model.CatalogEntry{
			Label:    Label(name, lang),
			ImageRef: imageRef(imageDir, name, imageExt),
		})
	}
	return &Static{entries: dedupe(entries)}
}

func (s *Static) Entries(context.Context) ([]model.CatalogEntry, error) {
	out := make([]model.CatalogEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}
