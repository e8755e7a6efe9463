package domain

// InputMode tells how a plain text message of a chat is interpreted
type InputMode string

const (
	ModeQuiz            InputMode = "quiz"
	ModeAwaitingNewWord InputMode = "awaiting_new_word"
)
