package concept

import (
	"context"
	"errors"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
)

var ErrNotFound = errors.New("concept not found")

type Repository interface {
	// LatestByAccount returns the most recent past-concepts record for
	// an account, or ErrNotFound.
	LatestByAccount(ctx context.Context, accountID int64) (*domain.Concept, error)
}
