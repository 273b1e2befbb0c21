// internal/model/game.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// WordView is a word as shown in the options of a round.
type WordView struct {
	Label    string `json:"label"`
	ImageRef string `json:"image_ref"`
}

// RoundResponse hides the correct answer until the round has been answered.
type RoundResponse struct {
	Index         int        `json:"index"`
	Type          RoundType  `json:"type"`
	Prompt        string     `json:"prompt"`
	Options       []WordView `json:"options"`
	Selected      *string    `json:"selected,omitempty"`
	IsCorrect     *bool      `json:"is_correct,omitempty"`
	CorrectAnswer *string    `json:"correct_answer,omitempty"`
}

// GameResponse is the response DTO for a session.
type GameResponse struct {
	GameID            uuid.UUID       `json:"game_id"`
	CurrentRoundIndex int             `json:"current_round_index"`
	RoundCount        int             `json:"round_count"`
	IsComplete        bool            `json:"is_complete"`
	CorrectAnswers    int             `json:"correct_answers"`
	IncorrectAnswers  int             `json:"incorrect_answers"`
	StartTime         time.Time       `json:"start_time"`
	EndTime           *time.Time      `json:"end_time,omitempty"`
	Rounds            []RoundResponse `json:"rounds"`
}

// SubmitAnswerRequest is the request body for answering a round.
type SubmitAnswerRequest struct {
	Selected string `json:"selected" validate:"required,max=200"`
}

// AnswerResponse reports the outcome of one answer together with the updated game.
type AnswerResponse struct {
	IsCorrect     bool         `json:"is_correct"`
	CorrectAnswer string       `json:"correct_answer"`
	Game          GameResponse `json:"game"`
}

// WordStatResponse is one row of the learner's statistics.
type WordStatResponse struct {
	Label          string  `json:"label"`
	ImageRef       string  `json:"image_ref"`
	CorrectCount   int     `json:"correct_count"`
	IncorrectCount int     `json:"incorrect_count"`
	Priority       float64 `json:"priority"`
}

func NewRoundResponse(index int, r *Round) RoundResponse {
	resp := RoundResponse{
		Index:   index,
		Type:    r.Type,
		Prompt:  r.Prompt(),
		Options: make([]WordView, 0, len(r.Options)),
	}
	for _, o := range r.Options {
		resp.Options = append(resp.Options, WordView{Label: o.Label, ImageRef: o.ImageRef})
	}
	if r.Answered() {
		selected := r.SelectedAnswer.Label
		correct := r.IsCorrect()
		answer := r.CorrectAnswer.Label
		resp.Selected = &selected
		resp.IsCorrect = &correct
		resp.CorrectAnswer = &answer
	}
	return resp
}

func NewGameResponse(s *Session) GameResponse {
	resp := GameResponse{
		GameID:            s.ID,
		CurrentRoundIndex: s.CurrentRoundIndex,
		RoundCount:        len(s.Rounds),
		IsComplete:        s.IsComplete(),
		CorrectAnswers:    s.CorrectAnswers(),
		IncorrectAnswers:  s.IncorrectAnswers(),
		StartTime:         s.StartTime,
		EndTime:           s.EndTime,
		Rounds:            make([]RoundResponse, 0, len(s.Rounds)),
	}
	for i, r := range s.Rounds {
		resp.Rounds = append(resp.Rounds, NewRoundResponse(i, r))
	}
	return resp
}
