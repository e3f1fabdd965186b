package notifierimpl

import (
	"strings"
	"testing"
	"time"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
)

func TestFormatDigest(t *testing.T) {
	t.Parallel()

	until := time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)
	ideas := []*domain.PostIdea{
		{
			AccountID:     7,
			ScheduledDate: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC),
			IdeaContent: domain.IdeaContent{
				Caption:  "Wake up to this view of Lake Washington from your suite this weekend",
				PostType: domain.PostTypeReel,
			},
		},
		{
			AccountID:     9,
			ScheduledDate: time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
			IdeaContent: domain.IdeaContent{
				Caption:  "Q&A Friday",
				PostType: domain.PostTypeStory,
			},
		},
	}
	names := map[int64]string{7: "The Harborview"}

	digest := formatDigest(ideas, names, until)

	if !strings.Contains(digest, "2025-06-03 | The Harborview | Reel") {
		t.Errorf("digest missing named account line:\n%s", digest)
	}
	if !strings.Contains(digest, "account 9") {
		t.Errorf("digest missing fallback account label:\n%s", digest)
	}
	if !strings.Contains(digest, "...") {
		t.Errorf("long caption should be truncated:\n%s", digest)
	}
	if strings.Contains(digest, "Lake Washington from your suite this weekend") {
		t.Errorf("caption not truncated at 50 chars:\n%s", digest)
	}
}
