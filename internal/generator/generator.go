package generator

import (
	"context"
	"errors"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
)

// ErrUnparsableReply means the model reply could not be reduced to a valid
// idea: no balanced JSON object, invalid JSON, or missing required fields.
// The operation aborts; nothing is persisted and the caller may retry the
// whole call.
var ErrUnparsableReply = errors.New("model reply is not a valid post idea")

type Client interface {
	// Generate builds the prompt context for the account, asks the model
	// for one post idea and returns it with scheduling metadata attached.
	// It performs no persistence; the caller inserts the result.
	Generate(ctx context.Context, accountID int64, userContext string) (domain.PostIdea, error)
}
