package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// RegisterUser inserts the user or refreshes its username. A freshly inserted
// user gets every dictionary word in the same transaction, so a failed link
// leaves no user row behind and the next call retries it.
// xmax is zero only for a freshly inserted row.
func (r *UserRepo) RegisterUser(userID int64, username string) (bool, error) {
	var created bool
	err := withTx(r.db, func(tx *sqlx.Tx) error {
		err := tx.Get(&created, `
			INSERT INTO users (id, username)
			VALUES ($1, $2)
			ON CONFLICT (id)
			DO UPDATE SET username = EXCLUDED.username
			RETURNING (xmax = 0)
		`, userID, username)
		if err != nil {
			return fmt.Errorf("upsert user: %w", err)
		}

		if !created {
			return nil
		}

		_, err = tx.Exec(`
			INSERT INTO user_words (user_id, username, word_id)
			SELECT $1, $2, id FROM words
			ON CONFLICT (user_id, word_id) DO NOTHING
		`, userID, username)
		if err != nil {
			return fmt.Errorf("link dictionary: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}
