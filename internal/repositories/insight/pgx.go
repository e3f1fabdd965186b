package insight

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
		logger: logger.WithComponent("InsightRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// LatestByAccount returns the most recent performance note for an account.
func (p *Pgx) LatestByAccount(ctx context.Context, accountID int64) (*domain.Insight, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "account_id", "notes", "update_date").
		From("account_insights").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("update_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var insight domain.Insight
	err = p.pg.QueryRow(ctx, query, args...).
		Scan(&insight.ID, &insight.AccountID, &insight.Notes, &insight.UpdateDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &insight, nil
}
