package game

import (
	"context"
	"errors"
	"testing"

	"go_5_memory_game/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoringSession(correct model.Word, options ...model.Word) *model.Session {
	return &model.Session{
		Rounds: []*model.Round{{
			Type:          model.RoundTypeImageWithWords,
			CorrectAnswer: correct,
			Options:       options,
		}},
	}
}

func TestScorer_RecordAnswer(t *testing.T) {
	ball := model.Word{Label: "Ball", ImageRef: "images/ball.svg"}
	hat := model.Word{Label: "Hut", ImageRef: "images/hat.svg"}

	tests := []struct {
		name          string
		selected      model.Word
		wantCorrect   int
		wantIncorrect int
	}{
		{name: "correct answer", selected: ball, wantCorrect: 3, wantIncorrect: 1},
		{name: "incorrect answer", selected: hat, wantCorrect: 2, wantIncorrect: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := model.NewWordPool(
				model.Word{Label: "Ball", ImageRef: "images/ball.svg", CorrectCount: 2, IncorrectCount: 1},
				model.Word{Label: "Hut", ImageRef: "images/hat.svg", CorrectCount: 5},
			)
			store := &memoryStore{}
			session := scoringSession(ball, ball, hat)

			err := NewScorer(store).RecordAnswer(context.Background(), pool, session, 0, tt.selected)
			require.NoError(t, err)

			require.Len(t, store.saves, 1)
			saved := store.saves[0].Pool()
			got, ok := saved.Find("Ball")
			require.True(t, ok)
			assert.Equal(t, tt.wantCorrect, got.CorrectCount)
			assert.Equal(t, tt.wantIncorrect, got.IncorrectCount)

			other, _ := saved.Find("Hut")
			assert.Equal(t, 5, other.CorrectCount)
			assert.Equal(t, 0, other.IncorrectCount)

			require.NotNil(t, session.Rounds[0].SelectedAnswer)
			assert.Equal(t, tt.selected.Label, session.Rounds[0].SelectedAnswer.Label)
		})
	}
}

func TestScorer_RecordAnswer_CountsOnlyTheCorrectWord(t *testing.T) {
	pool := model.NewWordPool(
		model.Word{Label: "Ball"},
		model.Word{Label: "Hund"},
		model.Word{Label: "Katze"},
	)
	store := &memoryStore{}
	session := scoringSession(model.Word{Label: "Ball"}, model.Word{Label: "Ball"}, model.Word{Label: "Hund"})

	// a wrong pick is charged to the word that was asked, not to the word picked
	err := NewScorer(store).RecordAnswer(context.Background(), pool, session, 0, model.Word{Label: "Hund"})
	require.NoError(t, err)

	assert.Equal(t, []model.Word{
		{Label: "Ball", IncorrectCount: 1},
		{Label: "Hund"},
		{Label: "Katze"},
	}, store.stored.Words)
}

func TestScorer_RecordAnswer_WordMissingFromPool(t *testing.T) {
	pool := model.NewWordPool(model.Word{Label: "Hut"})
	store := &memoryStore{}
	session := scoringSession(model.Word{Label: "Ball"}, model.Word{Label: "Ball"}, model.Word{Label: "Hut"})

	err := NewScorer(store).RecordAnswer(context.Background(), pool, session, 0, model.Word{Label: "Ball"})
	require.NoError(t, err)

	assert.Empty(t, store.saves)
	assert.True(t, session.Rounds[0].Answered())
	w, _ := pool.Find("Hut")
	assert.Equal(t, 0, w.TotalAttempts())
}

func TestScorer_RecordAnswer_SaveFails(t *testing.T) {
	pool := model.NewWordPool(model.Word{Label: "Ball"})
	store := &memoryStore{err: errors.New("disk full")}
	session := scoringSession(model.Word{Label: "Ball"}, model.Word{Label: "Ball"})

	err := NewScorer(store).RecordAnswer(context.Background(), pool, session, 0, model.Word{Label: "Ball"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrStorageWrite)
	assert.Contains(t, err.Error(), "disk full")

	// the in-memory pool keeps the update
	w, _ := pool.Find("Ball")
	assert.Equal(t, 1, w.CorrectCount)
}

func TestScorer_RecordAnswer_IndexOutOfRange(t *testing.T) {
	pool := model.NewWordPool(model.Word{Label: "Ball"})
	store := &memoryStore{}
	session := scoringSession(model.Word{Label: "Ball"}, model.Word{Label: "Ball"})

	for _, idx := range []int{-1, 1, 10} {
		err := NewScorer(store).RecordAnswer(context.Background(), pool, session, idx, model.Word{Label: "Ball"})
		assert.ErrorIs(t, err, model.ErrInvalidInput, "index %d", idx)
	}
	assert.Empty(t, store.saves)
	assert.False(t, session.Rounds[0].Answered())
}

func TestScorer_RecordAnswer_Overwrites(t *testing.T) {
	pool := model.NewWordPool(model.Word{Label: "Ball"}, model.Word{Label: "Hut"})
	store := &memoryStore{}
	session := scoringSession(model.Word{Label: "Ball"}, model.Word{Label: "Ball"}, model.Word{Label: "Hut"})
	scorer := NewScorer(store)

	require.NoError(t, scorer.RecordAnswer(context.Background(), pool, session, 0, model.Word{Label: "Hut"}))
	require.NoError(t, scorer.RecordAnswer(context.Background(), pool, session, 0, model.Word{Label: "Ball"}))

	assert.Equal(t, "Ball", session.Rounds[0].SelectedAnswer.Label)
	w, _ := pool.Find("Ball")
	assert.Equal(t, 1, w.CorrectCount)
	assert.Equal(t, 1, w.IncorrectCount)
	assert.Len(t, store.saves, 2)
}
