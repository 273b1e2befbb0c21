// internal/model/round.go
package model

// RoundType decides what is shown as the prompt and what as the options.
type RoundType string

const (
	// RoundTypeImageWithWords shows one image and asks for the matching word.
	RoundTypeImageWithWords RoundType = "image_with_words"
	// RoundTypeWordWithImages shows one word and asks for the matching image.
	RoundTypeWordWithImages RoundType = "word_with_images"
)

func (t RoundType) Valid() bool {
	return t == RoundTypeImageWithWords || t == RoundTypeWordWithImages
}

// Round is one question. SelectedAnswer is nil until the learner answers.
type Round struct {
	Type           RoundType
	CorrectAnswer  Word
	Options        []Word
	SelectedAnswer *Word
}

func (r *Round) Answered() bool {
	return r.SelectedAnswer != nil
}

// IsCorrect is false for unanswered rounds; use Answered to tell the two apart.
func (r *Round) IsCorrect() bool {
	return r.SelectedAnswer != nil && r.SelectedAnswer.Label == r.CorrectAnswer.Label
}

// Option returns the option carrying label.
func (r *Round) Option(label string) (Word, bool) {
	for _, o := range r.Options {
		if o.Label == label {
			return o, true
		}
	}
	return Word{}, false
}

// Prompt is what the learner sees: an image reference or a word label.
func (r *Round) Prompt() string {
	if r.Type == RoundTypeWordWithImages {
		return r.CorrectAnswer.Label
	}
	return r.CorrectAnswer.ImageRef
}
