package game

import "go_5_memory_game/internal/model"

// InitializePool merges stored statistics with the words the catalog offers this session.
// Stored words keep their order and counts; catalog labels not yet known are appended
// in catalog order with zero counts. A nil snapshot means first run.
func InitializePool(stored *model.PoolSnapshot, catalog []model.CatalogEntry) *model.WordPool {
	var pool *model.WordPool
	if stored == nil {
		pool = model.NewWordPool()
	} else {
		pool = stored.Pool()
	}
	for _, entry := range catalog {
		pool.Append(model.Word{Label: entry.Label, ImageRef: entry.ImageRef})
	}
	return pool
}
