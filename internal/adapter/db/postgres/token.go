package db

import (
	"context"
	stdErrors "errors"
	"log/slog"

	"github.com/The-Gleb/event_banner/internal/domain/service"
	"github.com/The-Gleb/event_banner/internal/errors"
	"github.com/The-Gleb/event_banner/pkg/client/postgresql"
	"github.com/jackc/pgx/v5"
)

var _ service.TokenStorage = new(tokenStorage)

type tokenStorage struct {
	client postgresql.Client
}

func NewTokenStorage(c postgresql.Client) *tokenStorage {
	return &tokenStorage{c}
}

func (s *tokenStorage) CheckToken(ctx context.Context, token string) (bool, error) {
	row := s.client.QueryRow(
		ctx,
		`SELECT is_admin
		FROM tokens
		WHERE "token" = $1;`,
		token,
	)

	var isAdmin bool
	err := row.Scan(&isAdmin)
	if err != nil {
		if stdErrors.Is(err, pgx.ErrNoRows) {
			return false, errors.NewDomainError(errors.ErrUnauthorized, "")
		}
		slog.Error("error scanning row", "error", err)
		return false, errors.NewDomainError(errors.ErrDB, "")
	}

	return isAdmin, nil
}

// EnsureToken registers token, updating its admin flag when it already exists.
func (s *tokenStorage) EnsureToken(ctx context.Context, token string, isAdmin bool) error {
	_, err := s.client.Exec(
		ctx,
		`INSERT INTO tokens ("token", "is_admin", "created_at")
		VALUES ($1, $2, NOW())
		ON CONFLICT ("token") DO UPDATE SET is_admin = EXCLUDED.is_admin;`,
		token, isAdmin,
	)
	if err != nil {
		slog.Error("error inserting token", "error", err)
		return errors.NewDomainError(errors.ErrDB, "")
	}

	return nil
}
