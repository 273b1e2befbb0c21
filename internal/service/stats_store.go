package service

import (
	"context"
	"errors"

	"go_5_memory_game/internal/middleware"
	"go_5_memory_game/internal/model"
	"go_5_memory_game/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// learnerStore binds the statistics repository to one learner so the game engine
// can load and save without knowing who is playing.
type learnerStore struct {
	db        *gorm.DB
	repo      repository.StatisticsRepository
	learnerID uuid.UUID
}

func newLearnerStore(db *gorm.DB, repo repository.StatisticsRepository, learnerID uuid.UUID) *learnerStore {
	return &learnerStore{db: db, repo: repo, learnerID: learnerID}
}

// Load treats every failure as "nothing stored" so a broken row never blocks a game.
func (s *learnerStore) Load(ctx context.Context) (*model.PoolSnapshot, bool) {
	snapshot, err := s.repo.FindByLearner(ctx, s.db, s.learnerID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			middleware.GetLogger(ctx).Warn("Stored statistics unusable, starting fresh",
				"learner_id", s.learnerID.String(),
				"error", err,
			)
		}
		return nil, false
	}
	return snapshot, true
}

func (s *learnerStore) Save(ctx context.Context, snapshot *model.PoolSnapshot) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Save(ctx, tx, s.learnerID, snapshot)
	})
}
