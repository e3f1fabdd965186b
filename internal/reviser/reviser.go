package reviser

import (
	"context"
	"errors"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
)

// ErrEmptyFeedback is returned before any model call when the tweak
// feedback is empty or whitespace. User-correctable.
var ErrEmptyFeedback = errors.New("tweak feedback must not be empty")

type Client interface {
	// Revise asks the model for an improved version of existing idea
	// content based on free-text feedback. It returns the revised
	// content only; the caller applies it via the idea store. The
	// idea's source attribution is unchanged by a revision.
	Revise(ctx context.Context, content domain.IdeaContent, feedback string) (domain.IdeaContent, error)
}
