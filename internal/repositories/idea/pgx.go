package idea

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
	"github.com/bizbuddy/idea-pipeline/internal/repositories"
	"github.com/bizbuddy/idea-pipeline/pkg/config"
	"github.com/bizbuddy/idea-pipeline/pkg/logger"
	"github.com/google/uuid"

	sq "github.com/Masterminds/squirrel"
)

const table = "post_ideas"

var columns = []string{
	"id", "account_id", "scheduled_date", "summary", "caption",
	"post_type", "themes", "tone", "source", "created_at", "updated_at",
}

type Pgx struct {
	pg           *pgxpool.Pool
	logger       logger.Logger
	intervalDays int
	now          func() time.Time
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger, cfg *config.Config) *Pgx {
	return &Pgx{
		pg:           pg,
		logger:       logger.WithComponent("IdeaRepo"),
		intervalDays: cfg.Scheduler.PostIntervalDays,
		now:          time.Now,
	}
}

var _ Repository = (*Pgx)(nil)

// Create inserts a new idea and returns its assigned id.
func (p *Pgx) Create(ctx context.Context, idea domain.PostIdea) (uuid.UUID, error) {
	id := idea.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := repositories.SqBuilder.
		Insert(table).
		Columns("id", "account_id", "scheduled_date", "summary", "caption",
			"post_type", "themes", "tone", "source", "created_at").
		Values(id, idea.AccountID, idea.ScheduledDate, nullable(idea.Summary), idea.Caption,
			string(idea.PostType), encodeList(idea.Themes), encodeList(idea.Tone),
			string(idea.Source), p.now()).
		ToSql()
	if err != nil {
		return uuid.Nil, repositories.ErrBadQuery
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if tag.RowsAffected() != 1 {
		return uuid.Nil, fmt.Errorf("%w: expected 1 row, wrote %d", ErrWriteFailed, tag.RowsAffected())
	}

	return id, nil
}

// GetByID returns one idea or ErrNotFound.
func (p *Pgx) GetByID(ctx context.Context, id uuid.UUID) (*domain.PostIdea, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	row := p.pg.QueryRow(ctx, query, args...)
	idea, err := scanIdea(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return idea, nil
}

// ListByAccount returns all ideas for an account ordered by scheduled_date.
func (p *Pgx) ListByAccount(ctx context.Context, accountID int64) ([]*domain.PostIdea, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("scheduled_date ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return p.queryIdeas(ctx, query, args)
}

// ListScheduledBetween returns ideas scheduled in [from, to) across accounts.
func (p *Pgx) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*domain.PostIdea, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From(table).
		Where(sq.GtOrEq{"scheduled_date": from}).
		Where(sq.Lt{"scheduled_date": to}).
		OrderBy("scheduled_date ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return p.queryIdeas(ctx, query, args)
}

// LatestScheduledDate returns the maximum scheduled_date, nil when no rows.
func (p *Pgx) LatestScheduledDate(ctx context.Context, accountID int64) (*time.Time, error) {
	query, args, err := repositories.SqBuilder.
		Select("MAX(scheduled_date)").
		From(table).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var latest *time.Time
	if err := p.pg.QueryRow(ctx, query, args...).Scan(&latest); err != nil {
		return nil, err
	}
	return latest, nil
}

// NextScheduledDate is the sole scheduling algorithm: latest date, or today
// when the account has no ideas, plus the configured interval.
func (p *Pgx) NextScheduledDate(ctx context.Context, accountID int64) (time.Time, error) {
	latest, err := p.LatestScheduledDate(ctx, accountID)
	if err != nil {
		return time.Time{}, err
	}
	return nextDate(latest, p.now(), p.intervalDays), nil
}

// RecentSummaries returns up to limit idea summaries, oldest scheduled first.
func (p *Pgx) RecentSummaries(ctx context.Context, accountID int64, limit int) ([]string, error) {
	query, args, err := repositories.SqBuilder.
		Select("COALESCE(summary, '')").
		From(table).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("scheduled_date ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// Update replaces content fields and stamps updated_at. Zero affected rows
// means the idea no longer exists; that is reported, not raised.
func (p *Pgx) Update(ctx context.Context, id uuid.UUID, content domain.IdeaContent) (int64, error) {
	query, args, err := repositories.SqBuilder.
		Update(table).
		Set("summary", nullable(content.Summary)).
		Set("caption", content.Caption).
		Set("post_type", string(content.PostType)).
		Set("themes", encodeList(content.Themes)).
		Set("tone", encodeList(content.Tone)).
		Set("updated_at", p.now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteByID removes one idea.
func (p *Pgx) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteByCaption removes every matching row; captions are not unique.
func (p *Pgx) DeleteByCaption(ctx context.Context, accountID int64, caption string) (int64, error) {
	query, args, err := repositories.SqBuilder.
		Delete(table).
		Where(sq.Eq{"account_id": accountID, "caption": caption}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	if n := tag.RowsAffected(); n > 1 {
		p.logger.Warn("Caption matched multiple ideas", "account_id", accountID, "rows_deleted", n)
	}
	return tag.RowsAffected(), nil
}

func (p *Pgx) queryIdeas(ctx context.Context, query string, args []any) ([]*domain.PostIdea, error) {
	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ideas := make([]*domain.PostIdea, 0)
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, err
		}
		ideas = append(ideas, idea)
	}
	return ideas, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdea(row rowScanner) (*domain.PostIdea, error) {
	var (
		idea     domain.PostIdea
		summary  *string
		postType string
		themes   string
		tone     string
		source   string
	)
	if err := row.Scan(&idea.ID, &idea.AccountID, &idea.ScheduledDate, &summary, &idea.Caption,
		&postType, &themes, &tone, &source, &idea.CreatedAt, &idea.UpdatedAt); err != nil {
		return nil, err
	}
	if summary != nil {
		idea.Summary = *summary
	}
	idea.PostType = domain.PostType(postType)
	idea.Themes = decodeList(themes)
	idea.Tone = decodeList(tone)
	idea.Source = domain.IdeaSource(source)
	return &idea, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
