// internal/model/snapshot.go
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PoolSnapshot is the persisted form of a WordPool. Word order is preserved.
type PoolSnapshot struct {
	Words []Word `json:"words"`
}

// Pool rebuilds a WordPool from the snapshot.
func (s *PoolSnapshot) Pool() *WordPool {
	return NewWordPool(s.Words...)
}

// MarshalSnapshot encodes a snapshot as JSON.
func MarshalSnapshot(s *PoolSnapshot) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrInvalidInput)
	}
	if s.Words == nil {
		s = &PoolSnapshot{Words: []Word{}}
	}
	return json.Marshal(s)
}

// UnmarshalSnapshot decodes a snapshot and checks the word invariants.
func UnmarshalSnapshot(data []byte) (*PoolSnapshot, error) {
	var s PoolSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	for i, w := range s.Words {
		if w.Label == "" {
			return nil, fmt.Errorf("%w: word %d has an empty label", ErrCorruptSnapshot, i)
		}
		if w.CorrectCount < 0 || w.IncorrectCount < 0 {
			return nil, fmt.Errorf("%w: word %q has negative counts", ErrCorruptSnapshot, w.Label)
		}
	}
	return &s, nil
}

// StatisticsRecord stores one serialized snapshot per learner.
type StatisticsRecord struct {
	LearnerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Payload   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StatisticsRecord) TableName() string {
	return "statistics_snapshots"
}
