package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
	"github.com/bizbuddy/idea-pipeline/internal/generator"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/account"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/idea"
	"github.com/bizbuddy/idea-pipeline/internal/reviser"
	"github.com/bizbuddy/idea-pipeline/pkg/errors"
)

func (s *Server) listAccounts(c *gin.Context) {
	accounts, err := s.AccountRepo.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, accountResponse{ID: a.ID, Name: a.Name, Strategy: a.Strategy})
	}
	c.JSON(http.StatusOK, resp)
}

// generateIdea runs the full pipeline: context aggregation, one model call,
// parse-or-abort, then persistence. The stored idea is returned.
func (s *Server) generateIdea(c *gin.Context) {
	accountID, ok := s.accountID(c)
	if !ok {
		return
	}

	var req generateIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if !s.Limiter.Allow(accountID) {
		c.JSON(http.StatusTooManyRequests, errorResponse{Error: "generation rate limit reached, try again shortly"})
		return
	}

	generated, err := s.Generator.Generate(c.Request.Context(), accountID, req.UserContext)
	if err != nil {
		s.fail(c, err)
		return
	}

	id, err := s.IdeaRepo.Create(c.Request.Context(), generated)
	if err != nil {
		s.fail(c, err)
		return
	}
	generated.ID = id

	c.JSON(http.StatusCreated, toIdeaResponse(&generated))
}

// createIdea is the manual-entry path. The scheduled date defaults to the
// account's next open slot when the caller omits it.
func (s *Server) createIdea(c *gin.Context) {
	accountID, ok := s.accountID(c)
	if !ok {
		return
	}

	var req createIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	content := req.toDomain()
	if err := content.Validate(); err != nil {
		s.fail(c, err)
		return
	}

	scheduledDate, err := s.resolveScheduledDate(c, accountID, req.ScheduledDate)
	if err != nil {
		s.fail(c, err)
		return
	}

	newIdea := domain.PostIdea{
		AccountID:     accountID,
		ScheduledDate: scheduledDate,
		IdeaContent:   content,
		Source:        domain.SourceUser,
	}

	id, err := s.IdeaRepo.Create(c.Request.Context(), newIdea)
	if err != nil {
		s.fail(c, err)
		return
	}
	newIdea.ID = id

	c.JSON(http.StatusCreated, toIdeaResponse(&newIdea))
}

func (s *Server) listIdeas(c *gin.Context) {
	accountID, ok := s.accountID(c)
	if !ok {
		return
	}

	ideas, err := s.IdeaRepo.ListByAccount(c.Request.Context(), accountID)
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := make([]ideaResponse, 0, len(ideas))
	for _, i := range ideas {
		resp = append(resp, toIdeaResponse(i))
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getIdea(c *gin.Context) {
	id, ok := s.ideaID(c)
	if !ok {
		return
	}

	found, err := s.IdeaRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toIdeaResponse(found))
}

// tweakIdea revises an idea with model feedback and applies the result.
// Zero affected rows means the idea was deleted meanwhile; that is reported
// to the caller, not raised.
func (s *Server) tweakIdea(c *gin.Context) {
	id, ok := s.ideaID(c)
	if !ok {
		return
	}

	var req tweakIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	existing, err := s.IdeaRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	revised, err := s.Reviser.Revise(c.Request.Context(), existing.IdeaContent, req.Feedback)
	if err != nil {
		s.fail(c, err)
		return
	}

	affected, err := s.IdeaRepo.Update(c.Request.Context(), id, revised)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, affectedResponse{Affected: affected})
}

func (s *Server) updateIdea(c *gin.Context) {
	id, ok := s.ideaID(c)
	if !ok {
		return
	}

	var req ideaContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	content := req.toDomain()
	if err := content.Validate(); err != nil {
		s.fail(c, err)
		return
	}

	affected, err := s.IdeaRepo.Update(c.Request.Context(), id, content)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, affectedResponse{Affected: affected})
}

func (s *Server) deleteIdea(c *gin.Context) {
	id, ok := s.ideaID(c)
	if !ok {
		return
	}

	affected, err := s.IdeaRepo.DeleteByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, affectedResponse{Affected: affected})
}

// deleteIdeasByCaption is the legacy caption-keyed deletion. Captions are
// not unique; every matching row for the account is removed.
func (s *Server) deleteIdeasByCaption(c *gin.Context) {
	accountID, ok := s.accountID(c)
	if !ok {
		return
	}

	caption := c.Query("caption")
	if strings.TrimSpace(caption) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "caption query parameter is required"})
		return
	}

	affected, err := s.IdeaRepo.DeleteByCaption(c.Request.Context(), accountID, caption)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, affectedResponse{Affected: affected})
}

func (s *Server) createInspiration(c *gin.Context) {
	accountID, ok := s.accountID(c)
	if !ok {
		return
	}

	var req createInspirationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.PostStructure) == "" && strings.TrimSpace(req.PostIdeas) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "post_structure or post_ideas is required"})
		return
	}

	err := s.InspirationRepo.Create(c.Request.Context(), domain.Inspiration{
		AccountID:     accountID,
		PostStructure: req.PostStructure,
		PostIdeas:     req.PostIdeas,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (s *Server) accountID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("accountID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid account id"})
		return 0, false
	}
	return id, true
}

func (s *Server) ideaID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("ideaID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid idea id"})
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) resolveScheduledDate(c *gin.Context, accountID int64, raw string) (time.Time, error) {
	if raw == "" {
		return s.IdeaRepo.NextScheduledDate(c.Request.Context(), accountID)
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrInvalidInput, "scheduled_date must be YYYY-MM-DD")
	}
	return parsed, nil
}

// fail maps pipeline errors onto HTTP statuses.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reviser.ErrEmptyFeedback) || errors.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, idea.ErrNotFound) || errors.Is(err, account.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, generator.ErrUnparsableReply):
		c.JSON(http.StatusBadGateway, errorResponse{Error: "the model returned an unusable reply, please try again"})
	case errors.Is(err, idea.ErrWriteFailed):
		s.Logger.Error("Store write failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to save the idea"})
	default:
		s.Logger.Error("Request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
