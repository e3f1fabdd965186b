package account

import (
	"context"
	"errors"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
)

var ErrNotFound = errors.New("account not found")

//go:generate go run go.uber.org/mock/mockgen -source=account.go -destination=mocks/mock.go -package=mocks
type Repository interface {
	// GetByID returns one account or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Account, error)

	// List returns all configured accounts.
	List(ctx context.Context) ([]*domain.Account, error)
}
