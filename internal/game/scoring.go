package game

import (
	"context"
	"fmt"

	"go_5_memory_game/internal/model"
)

// StatisticsStore persists a learner's pool as one snapshot.
type StatisticsStore interface {
	// Load reports false when there is nothing usable stored. It never fails.
	Load(ctx context.Context) (*model.PoolSnapshot, bool)
	// Save overwrites the stored snapshot.
	Save(ctx context.Context, snapshot *model.PoolSnapshot) error
}

// Scorer applies answers to the pool and persists the result.
type Scorer struct {
	store StatisticsStore
}

func NewScorer(store StatisticsStore) *Scorer {
	return &Scorer{store: store}
}

// RecordAnswer stores selected on the round and counts the outcome against the correct word.
// Whether a round may be answered twice is the caller's decision; a second call overwrites
// the selection and counts again. If the correct word has left the pool nothing is counted or saved.
func (s *Scorer) RecordAnswer(ctx context.Context, pool *model.WordPool, session *model.Session, roundIndex int, selected model.Word) error {
	if roundIndex < 0 || roundIndex >= len(session.Rounds) {
		return fmt.Errorf("%w: round index %d out of range [0, %d)", model.ErrInvalidInput, roundIndex, len(session.Rounds))
	}
	round := session.Rounds[roundIndex]
	answer := selected
	round.SelectedAnswer = &answer

	word, ok := pool.Find(round.CorrectAnswer.Label)
	if !ok {
		return nil
	}
	if round.IsCorrect() {
		word.CorrectCount++
	} else {
		word.IncorrectCount++
	}

	if err := s.store.Save(ctx, pool.Snapshot()); err != nil {
		return fmt.Errorf("%w: %w", model.ErrStorageWrite, err)
	}
	return nil
}
