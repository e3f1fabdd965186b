package inspiration

import (
	"context"
	"errors"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
)

var ErrNotFound = errors.New("inspiration not found")

type Repository interface {
	// LatestByAccount returns the most recently updated inspiration note
	// for an account, or ErrNotFound.
	LatestByAccount(ctx context.Context, accountID int64) (*domain.Inspiration, error)

	// Create adds a new inspiration note.
	Create(ctx context.Context, inspiration domain.Inspiration) error
}
