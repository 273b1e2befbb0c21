package game

import (
	"testing"

	"go_5_memory_game/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestPriority(t *testing.T) {
	tests := []struct {
		name string
		word model.Word
		want float64
	}{
		{name: "never asked", word: model.Word{}, want: 1.0},
		{name: "always correct", word: model.Word{CorrectCount: 8}, want: 0.5},
		{name: "always incorrect", word: model.Word{IncorrectCount: 3}, want: 2.5},
		{name: "half wrong", word: model.Word{CorrectCount: 2, IncorrectCount: 2}, want: 1.5},
		{name: "one in four wrong", word: model.Word{CorrectCount: 3, IncorrectCount: 1}, want: 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Priority(tt.word), 1e-9)
		})
	}
}

func TestPriority_RangeAndMonotonic(t *testing.T) {
	for total := 1; total <= 25; total++ {
		prev := -1.0
		for incorrect := 0; incorrect <= total; incorrect++ {
			p := Priority(model.Word{CorrectCount: total - incorrect, IncorrectCount: incorrect})
			assert.GreaterOrEqual(t, p, MinPriority)
			assert.LessOrEqual(t, p, MaxPriority)
			assert.Greater(t, p, prev, "total=%d incorrect=%d", total, incorrect)
			prev = p
		}
	}
}
