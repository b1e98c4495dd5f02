package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"wordregistry/internal/domain"
	"wordregistry/internal/repository"

	"github.com/lib/pq"
)

// uniqueViolation is the SQLSTATE Postgres reports for a unique index conflict
const uniqueViolation = "23505"

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// List returns all words in insertion order
func (r *WordRepo) List(ctx context.Context) ([]domain.Word, error) {
	query := `
		SELECT id, text
		FROM words
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		var (
			id int64
			w  domain.Word
		)
		if err := rows.Scan(&id, &w.Text); err != nil {
			return nil, err
		}
		w.ID = formatID(id)
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// Create inserts a word unless the text is already taken.
// The conflict check and the insert are a single statement.
func (r *WordRepo) Create(ctx context.Context, text string) (*domain.Word, error) {
	query := `
		INSERT INTO words (text)
		VALUES ($1)
		ON CONFLICT (text) DO NOTHING
		RETURNING id, text
	`
	var (
		id int64
		w  domain.Word
	)
	err := r.db.QueryRowContext(ctx, query, text).Scan(&id, &w.Text)
	if err == sql.ErrNoRows {
		return nil, repository.ErrDuplicateText
	}
	if err != nil {
		return nil, mapError(err)
	}

	w.ID = formatID(id)
	return &w, nil
}

// FindByText returns the word holding the given normalized text
func (r *WordRepo) FindByText(ctx context.Context, text string) (*domain.Word, error) {
	query := `SELECT id, text FROM words WHERE text = $1`

	var (
		id int64
		w  domain.Word
	)
	err := r.db.QueryRowContext(ctx, query, text).Scan(&id, &w.Text)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	w.ID = formatID(id)
	return &w, nil
}

// Update overwrites the text of the word with the given id
func (r *WordRepo) Update(ctx context.Context, id, text string) (*domain.Word, error) {
	key, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	query := `
		UPDATE words
		SET text = $2
		WHERE id = $1
		RETURNING id, text
	`
	var w domain.Word
	err := r.db.QueryRowContext(ctx, query, key, text).Scan(&key, &w.Text)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}

	w.ID = formatID(key)
	return &w, nil
}

// Delete removes the word with the given id and reports whether it existed
func (r *WordRepo) Delete(ctx context.Context, id string) (bool, error) {
	key, ok := parseID(id)
	if !ok {
		return false, nil
	}

	query := `DELETE FROM words WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, key)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Ping checks the database connection
func (r *WordRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close releases the connection pool
func (r *WordRepo) Close(_ context.Context) error {
	return r.db.Close()
}

func mapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return repository.ErrDuplicateText
	}
	return err
}

// parseID rejects ids that cannot name a row, so they read as "not found"
func parseID(id string) (int64, bool) {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil || key <= 0 {
		return 0, false
	}
	return key, true
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
