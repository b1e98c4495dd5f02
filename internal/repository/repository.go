package repository

import (
	"context"
	"errors"

	"wordregistry/internal/domain"
)

// ErrDuplicateText is returned by a store when a write would violate
// the unique index on the normalized text
var ErrDuplicateText = errors.New("duplicate word text")

// WordRepository defines word data operations.
// Lookups that match nothing return (nil, nil).
type WordRepository interface {
	List(ctx context.Context) ([]domain.Word, error)
	Create(ctx context.Context, text string) (*domain.Word, error)
	FindByText(ctx context.Context, text string) (*domain.Word, error)
	Update(ctx context.Context, id, text string) (*domain.Word, error)
	Delete(ctx context.Context, id string) (bool, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
