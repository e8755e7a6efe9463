package postgres

import (
	"fmt"

	"wordcards/internal/domain"

	"github.com/jmoiron/sqlx"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sqlx.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sqlx.DB) *WordRepo {
	return &WordRepo{db: db}
}

// SeedWords inserts pairs into the global dictionary, skipping known targets
func (r *WordRepo) SeedWords(pairs []domain.WordPair) error {
	query := `
		INSERT INTO words (target_word, translate_word)
		VALUES ($1, $2)
		ON CONFLICT (target_word) DO NOTHING
	`
	return withTx(r.db, func(tx *sqlx.Tx) error {
		for _, p := range pairs {
			if _, err := tx.Exec(query, p.Target, p.Translation); err != nil {
				return fmt.Errorf("seed %q: %w", p.Target, err)
			}
		}
		return nil
	})
}

// AddUserWord stores the pair in the dictionary if needed and links it to the user.
// The user must be registered. A known target keeps its first translation.
// It reports false when the user already had the word.
func (r *WordRepo) AddUserWord(userID int64, username string, pair domain.WordPair) (bool, error) {
	var added bool
	err := withTx(r.db, func(tx *sqlx.Tx) error {
		var wordID int64
		err := tx.Get(&wordID, `
			INSERT INTO words (target_word, translate_word)
			VALUES ($1, $2)
			ON CONFLICT (target_word) DO UPDATE SET target_word = EXCLUDED.target_word
			RETURNING id
		`, pair.Target, pair.Translation)
		if err != nil {
			return fmt.Errorf("ensure word: %w", err)
		}

		res, err := tx.Exec(`
			INSERT INTO user_words (user_id, username, word_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, word_id) DO NOTHING
		`, userID, username, wordID)
		if err != nil {
			return fmt.Errorf("link word: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		added = affected > 0
		return nil
	})
	return added, err
}

// GetUserWords returns the user's deck, most recent first
func (r *WordRepo) GetUserWords(userID int64) ([]domain.UserWord, error) {
	query := `
		SELECT uw.id AS user_word_id, uw.user_id, w.target_word, w.translate_word, uw.created_at
		FROM user_words uw
		JOIN words w ON w.id = uw.word_id
		WHERE uw.user_id = $1
		ORDER BY uw.created_at DESC
	`

	var words []domain.UserWord
	if err := r.db.Select(&words, query, userID); err != nil {
		return nil, err
	}
	return words, nil
}

// DeleteUserWord removes a deck entry owned by the user
func (r *WordRepo) DeleteUserWord(userID, userWordID int64) (bool, error) {
	var deleted bool
	err := withTx(r.db, func(tx *sqlx.Tx) error {
		res, err := tx.Exec(`DELETE FROM user_words WHERE id = $1 AND user_id = $2`, userWordID, userID)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		deleted = affected > 0
		return nil
	})
	return deleted, err
}

// RandomTargets returns up to limit random dictionary targets other than exclude
func (r *WordRepo) RandomTargets(exclude string, limit int) ([]string, error) {
	query := `
		SELECT target_word
		FROM words
		WHERE target_word <> $1
		ORDER BY RANDOM()
		LIMIT $2
	`

	var targets []string
	if err := r.db.Select(&targets, query, exclude, limit); err != nil {
		return nil, err
	}
	return targets, nil
}
