package game

import (
	"testing"

	"go_5_memory_game/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_SelectWeighted(t *testing.T) {
	tests := []struct {
		name  string
		words []model.Word
		draw  float64
		want  string
	}{
		{
			name:  "zero draw picks the first word",
			words: []model.Word{{Label: "A"}, {Label: "B"}},
			draw:  0.0,
			want:  "A",
		},
		{
			name:  "draw equal to total picks the last word",
			words: []model.Word{{Label: "A"}, {Label: "B"}},
			draw:  1.0,
			want:  "B",
		},
		{
			name:  "draw past total falls back to the last word",
			words: []model.Word{{Label: "A"}, {Label: "B"}},
			draw:  1.5,
			want:  "B",
		},
		{
			name:  "inside the heavy slice",
			words: []model.Word{{Label: "A", IncorrectCount: 10}, {Label: "B", CorrectCount: 10}},
			draw:  0.8, // 2.4 of 3.0
			want:  "A",
		},
		{
			name:  "just past the heavy slice",
			words: []model.Word{{Label: "A", IncorrectCount: 10}, {Label: "B", CorrectCount: 10}},
			draw:  0.84, // 2.52 of 3.0
			want:  "B",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(WithRandomizer(&stubRand{float: tt.draw}))
			pool := model.NewWordPool(tt.words...)

			got := g.selectWeighted(pool.Words())
			assert.Equal(t, tt.want, got.Label)
		})
	}
}

func TestGenerator_SelectWeighted_FavoursMissedWords(t *testing.T) {
	g := NewGenerator(WithRandomizer(NewRandomizer(42)))
	pool := model.NewWordPool(
		model.Word{Label: "missed", IncorrectCount: 6},
		model.Word{Label: "known", CorrectCount: 6},
	)

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[g.selectWeighted(pool.Words()).Label]++
	}
	// expected ratio is 2.5 : 0.5
	assert.Greater(t, counts["missed"], 3*counts["known"])
	assert.Positive(t, counts["known"])
}

func TestGenerator_CreateRound(t *testing.T) {
	g := NewGenerator(WithRandomizer(NewRandomizer(7)))
	pool := testPool("Ball", "Bett", "Buch", "Auto", "Katze", "Stuhl", "Uhr", "Tasse")

	for i := 0; i < 200; i++ {
		round, err := g.CreateRound(pool, model.RoundTypeImageWithWords)
		require.NoError(t, err)

		require.Len(t, round.Options, OptionsPerRound)
		seen := map[string]bool{}
		for _, o := range round.Options {
			assert.False(t, seen[o.Label], "duplicate option %q", o.Label)
			seen[o.Label] = true
		}
		assert.True(t, seen[round.CorrectAnswer.Label])
		assert.Equal(t, model.RoundTypeImageWithWords, round.Type)
		assert.Nil(t, round.SelectedAnswer)
	}
}

func TestGenerator_CreateRound_ShufflesCorrectAnswerPosition(t *testing.T) {
	g := NewGenerator(WithRandomizer(NewRandomizer(99)))
	pool := testPool("A", "B", "C", "D", "E")

	positions := map[int]int{}
	for i := 0; i < 400; i++ {
		round, err := g.CreateRound(pool, model.RoundTypeWordWithImages)
		require.NoError(t, err)
		for idx, o := range round.Options {
			if o.Label == round.CorrectAnswer.Label {
				positions[idx]++
			}
		}
	}
	assert.Len(t, positions, OptionsPerRound)
}

func TestGenerator_CreateRound_SmallPool(t *testing.T) {
	tests := []struct {
		name        string
		labels      []string
		wantOptions int
	}{
		{name: "single word", labels: []string{"Ball"}, wantOptions: 1},
		{name: "two words", labels: []string{"Ball", "Hut"}, wantOptions: 2},
		{name: "three words", labels: []string{"Ball", "Hut", "Tür"}, wantOptions: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(WithRandomizer(NewRandomizer(1)))

			round, err := g.CreateRound(testPool(tt.labels...), model.RoundTypeImageWithWords)
			require.NoError(t, err)
			assert.Len(t, round.Options, tt.wantOptions)
			assert.Contains(t, optionLabels(round), round.CorrectAnswer.Label)
		})
	}
}

func TestGenerator_CreateRound_Errors(t *testing.T) {
	g := NewGenerator()

	_, err := g.CreateRound(model.NewWordPool(), model.RoundTypeImageWithWords)
	assert.ErrorIs(t, err, model.ErrEmptyPool)

	_, err = g.CreateRound(nil, model.RoundTypeImageWithWords)
	assert.ErrorIs(t, err, model.ErrEmptyPool)

	_, err = g.CreateRound(testPool("Ball"), model.RoundType("sound_with_words"))
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestGenerator_CreateRound_CopiesWords(t *testing.T) {
	g := NewGenerator(WithRandomizer(&stubRand{float: 0}))
	pool := testPool("Ball", "Hut")

	round, err := g.CreateRound(pool, model.RoundTypeImageWithWords)
	require.NoError(t, err)

	w, _ := pool.Find("Ball")
	w.IncorrectCount = 5
	assert.Equal(t, 0, round.CorrectAnswer.IncorrectCount)
}
