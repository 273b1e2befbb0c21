package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go_5_memory_game/internal/middleware"
	"go_5_memory_game/internal/model"

	"golang.org/x/sync/errgroup"
)

const (
	defaultProbeTimeout     = 3 * time.Second
	defaultProbeConcurrency = 8
)

// Probe checks each asset with a HEAD request and keeps the ones the server has.
// A missing or slow asset only removes that word.
type Probe struct {
	Client      *http.Client
	BaseURL     string
	ImageDir    string
	ImageExt    string
	Language    string
	Names       []string
	Timeout     time.Duration
	Concurrency int
}

func (p *Probe) Entries(ctx context.Context) ([]model.CatalogEntry, error) {
	logger := middleware.GetLogger(ctx)

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	limit := p.Concurrency
	if limit <= 0 {
		limit = defaultProbeConcurrency
	}
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}

	// 結果は Names と同じ順序で保持する
	found := make([]*model.CatalogEntry, len(p.Names))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, name := range p.Names {
		i, name := i, name
		g.Go(func() error {
			ref := imageRef(p.ImageDir, name, p.ImageExt)
			if err := p.head(ctx, client, ref, timeout); err != nil {
				logger.Debug("Asset unavailable, skipping", "asset", ref, "error", err)
				return nil
			}
			found[i] = &model.CatalogEntry{Label: Label(name, p.Language), ImageRef: ref}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("probe catalog: %w", err)
	}

	entries := make([]model.CatalogEntry, 0, len(found))
	for _, e := range found {
		if e != nil {
			entries = append(entries, *e)
		}
	}
	entries = dedupe(entries)
	logger.Info("Catalog probed", "requested", len(p.Names), "available", len(entries))
	return entries, nil
}

func (p *Probe) head(ctx context.Context, client *http.Client, ref string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := strings.TrimRight(p.BaseURL, "/") + "/" + strings.TrimLeft(ref, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
