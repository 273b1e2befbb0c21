package game

import (
	"fmt"

	"go_5_memory_game/internal/model"

	"github.com/google/uuid"
)

// CreateSession builds RoundsPerSession rounds against the same pool state.
// Statistics are not touched while the session is generated.
func (g *Generator) CreateSession(pool *model.WordPool) (*model.Session, error) {
	rounds := make([]*model.Round, 0, RoundsPerSession)
	for i := 0; i < RoundsPerSession; i++ {
		roundType := model.RoundTypeImageWithWords
		if g.rng.Intn(2) == 1 {
			roundType = model.RoundTypeWordWithImages
		}
		round, err := g.CreateRound(pool, roundType)
		if err != nil {
			return nil, fmt.Errorf("create round %d: %w", i, err)
		}
		rounds = append(rounds, round)
	}

	return &model.Session{
		ID:                uuid.New(),
		Rounds:            rounds,
		CurrentRoundIndex: 0,
		StartTime:         g.now(),
	}, nil
}
