package idea

import (
	"context"
	"errors"
	"time"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("post idea not found")

	// ErrWriteFailed wraps any insert that the database did not fully
	// accept. Callers must not treat the in-memory idea as durable.
	ErrWriteFailed = errors.New("post idea write failed")
)

//go:generate go run go.uber.org/mock/mockgen -source=idea.go -destination=mocks/mock.go -package=mocks
type Repository interface {
	// Create inserts a new idea and returns its assigned id.
	Create(ctx context.Context, idea domain.PostIdea) (uuid.UUID, error)

	// GetByID returns one idea or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PostIdea, error)

	// ListByAccount returns all ideas for an account ordered by
	// scheduled_date ascending. No rows is an empty slice, not an error.
	ListByAccount(ctx context.Context, accountID int64) ([]*domain.PostIdea, error)

	// ListScheduledBetween returns ideas across all accounts whose
	// scheduled_date falls in [from, to), ordered by scheduled_date.
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*domain.PostIdea, error)

	// LatestScheduledDate returns the maximum scheduled_date for an
	// account, or nil when the account has no ideas yet.
	LatestScheduledDate(ctx context.Context, accountID int64) (*time.Time, error)

	// NextScheduledDate returns the date the next idea should be
	// scheduled for: the latest existing date (or today when none exist)
	// plus the configured posting interval.
	NextScheduledDate(ctx context.Context, accountID int64) (time.Time, error)

	// RecentSummaries returns up to limit summaries of the account's
	// ideas, oldest scheduled first.
	RecentSummaries(ctx context.Context, accountID int64, limit int) ([]string, error)

	// Update replaces the content fields of one idea and stamps
	// updated_at. Returns the number of rows affected; updating a
	// deleted idea affects zero rows and is not an error.
	Update(ctx context.Context, id uuid.UUID, content domain.IdeaContent) (int64, error)

	// DeleteByID removes one idea and returns the number of rows affected.
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)

	// DeleteByCaption removes every idea of the account with an exact
	// caption match. Captions are not unique, so multiple rows may go at
	// once. Kept for the caption-keyed dashboards; id-keyed deletion is
	// preferred.
	DeleteByCaption(ctx context.Context, accountID int64, caption string) (int64, error)
}
