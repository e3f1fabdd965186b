package account

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
		logger: logger.WithComponent("AccountRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// GetByID returns one account or ErrNotFound.
func (p *Pgx) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "name", "strategy", "created_at").
		From("accounts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var account domain.Account
	err = p.pg.QueryRow(ctx, query, args...).
		Scan(&account.ID, &account.Name, &account.Strategy, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &account, nil
}

// List returns all configured accounts.
func (p *Pgx) List(ctx context.Context) ([]*domain.Account, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "name", "strategy", "created_at").
		From("accounts").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.Name, &account.Strategy, &account.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, &account)
	}

	return accounts, rows.Err()
}
