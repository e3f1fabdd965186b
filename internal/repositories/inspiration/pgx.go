package inspiration

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
	"github.com/bizbuddy/idea-pipeline/internal/repositories"
	"github.com/bizbuddy/idea-pipeline/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("InspirationRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// LatestByAccount returns the most recently updated inspiration note.
func (p *Pgx) LatestByAccount(ctx context.Context, accountID int64) (*domain.Inspiration, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "account_id", "post_structure", "post_ideas", "update_date").
		From("account_inspiration").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("update_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var insp domain.Inspiration
	err = p.pg.QueryRow(ctx, query, args...).
		Scan(&insp.ID, &insp.AccountID, &insp.PostStructure, &insp.PostIdeas, &insp.UpdateDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &insp, nil
}

// Create adds a new inspiration note.
func (p *Pgx) Create(ctx context.Context, inspiration domain.Inspiration) error {
	query, args, err := repositories.SqBuilder.
		Insert("account_inspiration").
		Columns("account_id", "post_structure", "post_ideas", "update_date").
		Values(inspiration.AccountID, inspiration.PostStructure, inspiration.PostIdeas, time.Now()).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	return err
}
