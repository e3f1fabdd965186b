package insight

import (
	"context"
	"errors"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
)

var ErrNotFound = errors.New("insight not found")

type Repository interface {
	// LatestByAccount returns the most recent performance note for an
	// account, or ErrNotFound.
	LatestByAccount(ctx context.Context, accountID int64) (*domain.Insight, error)
}
