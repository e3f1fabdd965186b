package server

import (
	"time"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
)

type ideaContentRequest struct {
	Summary  string   `json:"summary"`
	Caption  string   `json:"caption"`
	PostType string   `json:"post_type"`
	Themes   []string `json:"themes"`
	Tone     []string `json:"tone"`
}

func (r ideaContentRequest) toDomain() domain.IdeaContent {
	return domain.IdeaContent{
		Summary:  r.Summary,
		Caption:  r.Caption,
		PostType: domain.PostType(r.PostType),
		Themes:   r.Themes,
		Tone:     r.Tone,
	}
}

type createIdeaRequest struct {
	ideaContentRequest
	ScheduledDate string `json:"scheduled_date"` // YYYY-MM-DD, optional
}

type generateIdeaRequest struct {
	UserContext string `json:"user_context"`
}

type tweakIdeaRequest struct {
	Feedback string `json:"feedback"`
}

type createInspirationRequest struct {
	PostStructure string `json:"post_structure"`
	PostIdeas     string `json:"post_ideas"`
}

type accountResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
}

type ideaResponse struct {
	ID            string   `json:"id"`
	AccountID     int64    `json:"account_id"`
	ScheduledDate string   `json:"scheduled_date"`
	Summary       string   `json:"summary,omitempty"`
	Caption       string   `json:"caption"`
	PostType      string   `json:"post_type"`
	Themes        []string `json:"themes"`
	Tone          []string `json:"tone"`
	Source        string   `json:"source"`
	UpdatedAt     *string  `json:"updated_at,omitempty"`
}

type affectedResponse struct {
	Affected int64 `json:"affected"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toIdeaResponse(i *domain.PostIdea) ideaResponse {
	resp := ideaResponse{
		ID:            i.ID.String(),
		AccountID:     i.AccountID,
		ScheduledDate: i.ScheduledDate.Format("2006-01-02"),
		Summary:       i.Summary,
		Caption:       i.Caption,
		PostType:      string(i.PostType),
		Themes:        i.Themes,
		Tone:          i.Tone,
		Source:        string(i.Source),
	}
	if i.UpdatedAt != nil {
		ts := i.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &ts
	}
	return resp
}
