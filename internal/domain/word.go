package domain

import "time"

// Word is an entry of the global dictionary
type Word struct {
	ID          int64
	Target      string
	Translation string
}

// WordPair is a target/translation pair without identity
type WordPair struct {
	Target      string
	Translation string
}

// UserWord links a dictionary word into a user's deck
type UserWord struct {
	ID          int64     `db:"user_word_id"`
	UserID      int64     `db:"user_id"`
	Target      string    `db:"target_word"`
	Translation string    `db:"translate_word"`
	CreatedAt   time.Time `db:"created_at"`
}

// BaseWords is the starter dictionary seeded at startup
var BaseWords = []WordPair{
	{Target: "Hello", Translation: "Привет"},
	{Target: "Peace", Translation: "Мир"},
	{Target: "Green", Translation: "Зелёный"},
	{Target: "White", Translation: "Белый"},
	{Target: "Car", Translation: "Машина"},
}
