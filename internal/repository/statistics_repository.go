//go:generate mockery --name StatisticsRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_memory_game/internal/middleware"
	"go_5_memory_game/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatisticsRepository stores one pool snapshot per learner.
type StatisticsRepository interface {
	FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.PoolSnapshot, error)
	Save(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID, snapshot *model.PoolSnapshot) error
	Delete(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID) error
}

type gormStatisticsRepository struct{}

func NewGormStatisticsRepository() StatisticsRepository {
	return &gormStatisticsRepository{}
}

// FindByLearner returns model.ErrNotFound when nothing was saved yet and
// model.ErrCorruptSnapshot when the stored payload cannot be decoded.
func (r *gormStatisticsRepository) FindByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) (*model.PoolSnapshot, error) {
	logger := middleware.GetLogger(ctx)
	var record model.StatisticsRecord
	result := db.WithContext(ctx).Where("learner_id = ?", learnerID).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding statistics in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormStatisticsRepository.FindByLearner: %w", result.Error)
	}

	snapshot, err := model.UnmarshalSnapshot([]byte(record.Payload))
	if err != nil {
		return nil, fmt.Errorf("gormStatisticsRepository.FindByLearner: %w", err)
	}
	return snapshot, nil
}

// Save overwrites the learner's snapshot, inserting the row on first save.
func (r *gormStatisticsRepository) Save(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID, snapshot *model.PoolSnapshot) error {
	logger := middleware.GetLogger(ctx)

	payload, err := model.MarshalSnapshot(snapshot)
	if err != nil {
		return fmt.Errorf("gormStatisticsRepository.Save: %w", err)
	}
	record := &model.StatisticsRecord{LearnerID: learnerID, Payload: string(payload)}

	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "learner_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(record)
	if result.Error != nil {
		logger.Error("Error saving statistics in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
			"words", len(snapshot.Words),
		)
		return fmt.Errorf("gormStatisticsRepository.Save: %w", result.Error)
	}
	return nil
}

func (r *gormStatisticsRepository) Delete(ctx context.Context, tx *gorm.DB, learnerID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("learner_id = ?", learnerID).Delete(&model.StatisticsRecord{})
	if result.Error != nil {
		logger.Error("Error deleting statistics in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return fmt.Errorf("gormStatisticsRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
