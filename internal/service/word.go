package service

import (
	"context"
	"errors"

	"wordregistry/internal/domain"
	"wordregistry/internal/repository"
)

// WordService handles word registry business logic
type WordService struct {
	wordRepo       repository.WordRepository
	uniqueOnUpdate bool
}

// Option configures a WordService
type Option func(*WordService)

// WithUniqueOnUpdate controls how Update reports a text already held by
// another word. When enabled the caller gets a DuplicateEntryError naming
// that word; when disabled the store's rejection is passed through as a
// StorageError. Enabled by default.
func WithUniqueOnUpdate(enforce bool) Option {
	return func(s *WordService) {
		s.uniqueOnUpdate = enforce
	}
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, opts ...Option) *WordService {
	s := &WordService{
		wordRepo:       wordRepo,
		uniqueOnUpdate: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every word in creation order
func (s *WordService) List(ctx context.Context) ([]domain.Word, error) {
	words, err := s.wordRepo.List(ctx)
	if err != nil {
		return nil, &domain.StorageError{Op: "list words", Err: err}
	}
	if words == nil {
		words = []domain.Word{}
	}
	return words, nil
}

// Add normalizes text and stores it as a new word.
// Uniqueness is decided by the store in the same write as the insert.
func (s *WordService) Add(ctx context.Context, text string) (*domain.Word, error) {
	normalized := domain.NormalizeText(text)
	if normalized == "" {
		return nil, domain.ErrTextRequired()
	}

	word, err := s.wordRepo.Create(ctx, normalized)
	if errors.Is(err, repository.ErrDuplicateText) {
		return nil, s.duplicate(ctx, normalized)
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "add word", Err: err}
	}

	return word, nil
}

// Update replaces the text of an existing word, keeping its id
func (s *WordService) Update(ctx context.Context, id, text string) (*domain.Word, error) {
	normalized := domain.NormalizeText(text)
	if normalized == "" {
		return nil, domain.ErrTextRequired()
	}

	word, err := s.wordRepo.Update(ctx, id, normalized)
	if errors.Is(err, repository.ErrDuplicateText) && s.uniqueOnUpdate {
		return nil, s.duplicate(ctx, normalized)
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "update word", Err: err}
	}
	if word == nil {
		return nil, &domain.NotFoundError{ID: id}
	}

	return word, nil
}

// Delete permanently removes a word
func (s *WordService) Delete(ctx context.Context, id string) error {
	deleted, err := s.wordRepo.Delete(ctx, id)
	if err != nil {
		return &domain.StorageError{Op: "delete word", Err: err}
	}
	if !deleted {
		return &domain.NotFoundError{ID: id}
	}
	return nil
}

// Ping reports whether the backing store is reachable
func (s *WordService) Ping(ctx context.Context) error {
	if err := s.wordRepo.Ping(ctx); err != nil {
		return &domain.StorageError{Op: "ping store", Err: err}
	}
	return nil
}

// duplicate reads back the word that holds text so the caller can see it
func (s *WordService) duplicate(ctx context.Context, text string) error {
	existing, err := s.wordRepo.FindByText(ctx, text)
	if err != nil {
		return &domain.StorageError{Op: "find word", Err: err}
	}
	return &domain.DuplicateEntryError{Text: text, Existing: existing}
}
