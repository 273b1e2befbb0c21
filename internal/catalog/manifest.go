package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go_5_memory_game/internal/middleware"
	"go_5_memory_game/internal/model"
)

// manifestDocument is the JSON shape shared by remote and local manifests.
type manifestDocument struct {
	Words []model.CatalogEntry `json:"words"`
}

// Manifest fetches the word list from a JSON document served over HTTP.
type Manifest struct {
	Client  *http.Client
	URL     string
	Timeout time.Duration
}

func (m *Manifest) Entries(ctx context.Context) ([]model.CatalogEntry, error) {
	logger := middleware.GetLogger(ctx)

	timeout := m.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := m.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("manifest request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch manifest %s: %w", m.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch manifest %s: unexpected status %d", m.URL, resp.StatusCode)
	}

	entries, err := decodeManifest(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", m.URL, err)
	}
	logger.Info("Catalog manifest loaded", "url", m.URL, "words", len(entries))
	return entries, nil
}

func decodeManifest(r io.Reader) ([]model.CatalogEntry, error) {
	var doc manifestDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return dedupe(doc.Words), nil
}
