package concept

import (
	"context"
	"errors"

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
		logger: logger.WithComponent("ConceptRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// LatestByAccount returns the most recent past-concepts record.
func (p *Pgx) LatestByAccount(ctx context.Context, accountID int64) (*domain.Concept, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "account_id", "past_ideas", "update_date").
		From("account_past_concepts").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("update_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var concept domain.Concept
	err = p.pg.QueryRow(ctx, query, args...).
		Scan(&concept.ID, &concept.AccountID, &concept.PastIdeas, &concept.UpdateDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &concept, nil
}
