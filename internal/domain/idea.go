package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/bizbuddy/idea-pipeline/pkg/errors"
	"github.com/google/uuid"
)

type PostType string

const (
	PostTypeReel   PostType = "Reel"
	PostTypeStory  PostType = "Story"
	PostTypeStatic PostType = "Static Post"
)

func (t PostType) Valid() bool {
	switch t {
	case PostTypeReel, PostTypeStory, PostTypeStatic:
		return true
	}
	return false
}

// IdeaSource records who authored an idea. Revisions keep the original
// source; a model-tweaked idea stays attributed to the model.
type IdeaSource string

const (
	SourceModel IdeaSource = "model"
	SourceUser  IdeaSource = "user"
)

// IdeaContent holds the fields the model (or the user) authors. Themes and
// tone are order-significant; they are rendered in sequence on the dashboard.
type IdeaContent struct {
	Summary  string
	Caption  string
	PostType PostType
	Themes   []string
	Tone     []string
}

// Validate checks the fields required for any stored idea.
func (c IdeaContent) Validate() error {
	if strings.TrimSpace(c.Caption) == "" {
		return fmt.Errorf("%w: caption is required", errors.ErrInvalidInput)
	}
	if !c.PostType.Valid() {
		return fmt.Errorf("%w: post_type must be one of Reel, Story, Static Post", errors.ErrInvalidInput)
	}
	return nil
}

type PostIdea struct {
	ID            uuid.UUID
	AccountID     int64
	ScheduledDate time.Time
	IdeaContent
	Source    IdeaSource
	CreatedAt time.Time
	UpdatedAt *time.Time
}
