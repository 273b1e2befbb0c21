package game

import "go_5_memory_game/internal/model"

const (
	// BaselinePriority is the weight of a word that has never been asked.
	BaselinePriority = 1.0
	// MinPriority is approached by words that are always answered correctly. It is never zero.
	MinPriority = 0.5
	// MaxPriority is approached by words that are always answered incorrectly.
	MaxPriority = 2.5
)

// Priority is the selection weight of w: the error rate scaled into [MinPriority, MaxPriority].
func Priority(w model.Word) float64 {
	total := w.TotalAttempts()
	if total == 0 {
		return BaselinePriority
	}
	incorrectRatio := float64(w.IncorrectCount) / float64(total)
	return incorrectRatio*(MaxPriority-MinPriority) + MinPriority
}
