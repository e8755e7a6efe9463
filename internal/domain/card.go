package domain

import "errors"

var (
	// ErrNoWords is returned when a user's deck is empty
	ErrNoWords = errors.New("no words in deck")
	// ErrInvalidFormat is returned for add-word input that is not "word-translation"
	ErrInvalidFormat = errors.New("invalid word format")
)

// Question is the part of a card kept between messages
type Question struct {
	UserWordID  int64
	Target      string
	Translation string
}

// Hint renders "target -> translation"
func (q Question) Hint() string {
	return q.Target + " -> " + q.Translation
}

// Card is a question with its multiple-choice options
type Card struct {
	Question
	Options []string
}
