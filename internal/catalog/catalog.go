// Package catalog discovers the words available for a session.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"go_5_memory_game/internal/config"
	"go_5_memory_game/internal/model"
)

// Catalog lists the words whose assets are currently available.
type Catalog interface {
	Entries(ctx context.Context) ([]model.CatalogEntry, error)
}

var ErrUnknownSource = errors.New("unknown catalog source")

// New builds the catalog selected by cfg.Source. client is used by the HTTP-backed sources;
// nil means http.DefaultClient.
func New(cfg config.CatalogConfig, client *http.Client) (Catalog, error) {
	if client == nil {
		client = http.DefaultClient
	}
	words := cfg.Words
	if len(words) == 0 {
		words = DefaultWords
	}

	switch strings.ToLower(cfg.Source) {
	case "", "static":
		return NewStatic(words, cfg.Language, cfg.ImageDir, cfg.ImageExt), nil
	case "probe":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("catalog source probe: base_url is required")
		}
		return &Probe{
			Client:      client,
			BaseURL:     cfg.BaseURL,
			ImageDir:    cfg.ImageDir,
			ImageExt:    cfg.ImageExt,
			Language:    cfg.Language,
			Names:       words,
			Timeout:     cfg.ProbeTimeout,
			Concurrency: cfg.ProbeConcurrency,
		}, nil
	case "manifest":
		if cfg.ManifestURL == "" {
			return nil, fmt.Errorf("catalog source manifest: manifest_url is required")
		}
		return &Manifest{Client: client, URL: cfg.ManifestURL, Timeout: cfg.ProbeTimeout}, nil
	case "file":
		if cfg.ManifestPath == "" {
			return nil, fmt.Errorf("catalog source file: manifest_path is required")
		}
		return &File{Path: cfg.ManifestPath}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

// imageRef builds "images/ball.svg" style references.
func imageRef(dir, name, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return path.Join(dir, name+ext)
}

// dedupe drops entries with an empty label and repeated labels, keeping the first.
func dedupe(entries []model.CatalogEntry) []model.CatalogEntry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]model.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		e.Label = strings.TrimSpace(e.Label)
		e.ImageRef = strings.TrimSpace(e.ImageRef)
		if e.Label == "" {
			continue
		}
		if _, ok := seen[e.Label]; ok {
			continue
		}
		seen[e.Label] = struct{}{}
		out = append(out, e)
	}
	return out
}
