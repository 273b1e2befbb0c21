// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is one play-through: a fixed sequence of rounds and a forward-only cursor.
type Session struct {
	ID                uuid.UUID
	LearnerID         uuid.UUID
	Rounds            []*Round
	CurrentRoundIndex int
	StartTime         time.Time
	EndTime           *time.Time
}

// CurrentRound returns the round at the cursor, or false once the session is complete.
func (s *Session) CurrentRound() (*Round, bool) {
	if s.CurrentRoundIndex < 0 || s.CurrentRoundIndex >= len(s.Rounds) {
		return nil, false
	}
	return s.Rounds[s.CurrentRoundIndex], true
}

func (s *Session) IsComplete() bool {
	return s.CurrentRoundIndex >= len(s.Rounds)
}

// Advance moves the cursor one round forward and stamps EndTime when the last round is passed.
// It reports false if the session was already complete.
func (s *Session) Advance(now time.Time) bool {
	if s.IsComplete() {
		return false
	}
	s.CurrentRoundIndex++
	if s.IsComplete() && s.EndTime == nil {
		end := now
		s.EndTime = &end
	}
	return true
}

func (s *Session) CorrectAnswers() int {
	n := 0
	for _, r := range s.Rounds {
		if r.Answered() && r.IsCorrect() {
			n++
		}
	}
	return n
}

func (s *Session) IncorrectAnswers() int {
	n := 0
	for _, r := range s.Rounds {
		if r.Answered() && !r.IsCorrect() {
			n++
		}
	}
	return n
}
