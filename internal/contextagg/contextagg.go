package contextagg

import (
	"context"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
)

// Placeholder text used when a context source has no rows or cannot be
// reached. Missing input degrades to these sentences; it never fails the
// bundle build.
const (
	NoStrategy    = "No strategy found."
	NoPastPosts   = "No past posts found."
	NoInspiration = "No inspiration data found."
	NoPastIdeas   = "No past post ideas found."
	NoInsights    = "No account insights found."
)

type Client interface {
	// Build assembles the prompt context for one account. It never fails
	// because of a missing source; each absent source is represented by
	// its placeholder sentence.
	Build(ctx context.Context, accountID int64, userContext string) (domain.ContextBundle, error)
}
