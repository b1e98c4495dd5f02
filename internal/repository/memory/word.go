// Package memory is an in-process word store for local development and tests.
package memory

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"wordregistry/internal/domain"
	"wordregistry/internal/repository"
)

var errClosed = errors.New("memory store is closed")

// WordRepo implements repository.WordRepository over a slice kept in
// insertion order and an index from text to id.
type WordRepo struct {
	mu     sync.RWMutex
	nextID int64
	words  []domain.Word
	byText map[string]string
	closed bool
}

// NewWordRepo creates an empty store
func NewWordRepo() *WordRepo {
	return &WordRepo{byText: make(map[string]string)}
}

func (r *WordRepo) List(_ context.Context) ([]domain.Word, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, errClosed
	}

	words := make([]domain.Word, len(r.words))
	copy(words, r.words)
	return words, nil
}

func (r *WordRepo) Create(_ context.Context, text string) (*domain.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, errClosed
	}
	if _, taken := r.byText[text]; taken {
		return nil, repository.ErrDuplicateText
	}

	r.nextID++
	w := domain.Word{ID: strconv.FormatInt(r.nextID, 10), Text: text}
	r.words = append(r.words, w)
	r.byText[text] = w.ID
	return &w, nil
}

func (r *WordRepo) FindByText(_ context.Context, text string) (*domain.Word, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, errClosed
	}

	id, ok := r.byText[text]
	if !ok {
		return nil, nil
	}
	w := r.words[r.indexOf(id)]
	return &w, nil
}

func (r *WordRepo) Update(_ context.Context, id, text string) (*domain.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, errClosed
	}

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	if owner, taken := r.byText[text]; taken && owner != id {
		return nil, repository.ErrDuplicateText
	}

	delete(r.byText, r.words[i].Text)
	r.words[i].Text = text
	r.byText[text] = id

	w := r.words[i]
	return &w, nil
}

func (r *WordRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false, errClosed
	}

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}

	delete(r.byText, r.words[i].Text)
	r.words = append(r.words[:i], r.words[i+1:]...)
	return true, nil
}

func (r *WordRepo) Ping(_ context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return errClosed
	}
	return nil
}

// Close makes every later call fail, like a dropped connection
func (r *WordRepo) Close(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	return nil
}

// indexOf must be called with the lock held
func (r *WordRepo) indexOf(id string) int {
	for i := range r.words {
		if r.words[i].ID == id {
			return i
		}
	}
	return -1
}
