package db

import (
	"context"
	"embed"
	stdErrors "errors"
	"fmt"
	"log/slog"

	"github.com/The-Gleb/event_banner/internal/domain/entity"
	"github.com/The-Gleb/event_banner/internal/domain/service"
	"github.com/The-Gleb/event_banner/internal/errors"
	"github.com/The-Gleb/event_banner/pkg/client/postgresql"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ service.BannerStorage = new(bannerStorage)

const bannerColumns = `id, title, text, link, start_at, end_at, manual, published, created_at, updated_at`

type bannerStorage struct {
	client postgresql.Client
}

func NewBannerStorage(client postgresql.Client) *bannerStorage {
	return &bannerStorage{client: client}
}

//go:embed migration/*.sql
var migrationsDir embed.FS

func RunMigrations(dsn string) error {

	d, err := iofs.New(migrationsDir, "migration")
	if err != nil {
		slog.Error(err.Error())
		return fmt.Errorf("failed to return an iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dsn)
	if err != nil {
		slog.Error(err.Error())
		return fmt.Errorf("failed to get a new migrate instance: %w", err)
	}
	if err := m.Up(); err != nil {
		if !stdErrors.Is(err, migrate.ErrNoChange) {
			slog.Error(err.Error())
			return fmt.Errorf("failed to apply migrations to the DB: %w", err)
		}
	}
	return nil
}

func (s *bannerStorage) CreateBanner(ctx context.Context, dto entity.CreateBannerDTO) (int64, error) {

	row := s.client.QueryRow(
		ctx,
		`INSERT INTO
			banners ("title", "text", "link", "start_at", "end_at", "manual", "published", "created_at", "updated_at")
		VALUES
			($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id;`,
		dto.Title, dto.Text, dto.Link, dto.Start, dto.End, dto.Manual, dto.Published,
	)

	var bannerID int64
	err := row.Scan(&bannerID)
	if err != nil {
		slog.Error("error inserting into banners",
			"error", err,
		)
		return 0, writeError(err)
	}

	return bannerID, nil
}

func (s *bannerStorage) DeleteBanner(ctx context.Context, dto entity.DeleteBannerDTO) error {

	c, err := s.client.Exec(
		ctx,
		`DELETE FROM banners
		WHERE id = $1;`,
		dto.BannerID,
	)
	if err != nil {
		slog.Error("error deleting from banners",
			"error", err,
		)
		return errors.NewDomainError(errors.ErrDB, "")
	}
	if c.RowsAffected() == 0 {
		slog.Debug("error deleting from banners, id not found", "banner_id", dto.BannerID)
		return errors.NewDomainError(errors.ErrNoDataFound, "")
	}

	return nil
}

func (s *bannerStorage) GetBanner(ctx context.Context, dto entity.GetBannerDTO) (entity.Banner, error) {

	rows, err := s.client.Query(
		ctx,
		`SELECT `+bannerColumns+`
		FROM banners
		WHERE id = $1;`,
		dto.BannerID,
	)
	if err != nil {
		slog.Error("error selecting from banners",
			"error", err,
		)
		return entity.Banner{}, errors.NewDomainError(errors.ErrDB, "")
	}

	banner, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entity.Banner])
	if err != nil {
		if stdErrors.Is(err, pgx.ErrNoRows) {
			return entity.Banner{}, errors.NewDomainError(errors.ErrNoDataFound, "")
		}
		slog.Error("error collecting row",
			"error", err,
		)
		return entity.Banner{}, errors.NewDomainError(errors.ErrDB, "")
	}

	return banner, nil
}

func (s *bannerStorage) GetBanners(ctx context.Context, dto entity.GetBannersDTO) ([]entity.Banner, error) {

	rows, err := s.client.Query(
		ctx,
		`SELECT `+bannerColumns+`
		FROM banners
		ORDER BY created_at DESC, id DESC
		LIMIT $1
		OFFSET $2;`,
		dto.Limit, dto.Offset,
	)
	if err != nil {
		slog.Error("error selecting from banners",
			"error", err,
		)
		return nil, errors.NewDomainError(errors.ErrDB, "")
	}

	banners, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.Banner])
	if err != nil {
		slog.Error("error collecting rows",
			"error", err,
		)
		return nil, errors.NewDomainError(errors.ErrDB, "")
	}

	return banners, nil
}

// GetPublishedBanners returns every published banner, newest first.
func (s *bannerStorage) GetPublishedBanners(ctx context.Context) ([]entity.Banner, error) {

	rows, err := s.client.Query(
		ctx,
		`SELECT `+bannerColumns+`
		FROM banners
		WHERE published
		ORDER BY created_at DESC, id DESC;`,
	)
	if err != nil {
		slog.Error("error selecting published banners",
			"error", err,
		)
		return nil, errors.NewDomainError(errors.ErrDB, "")
	}

	banners, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.Banner])
	if err != nil {
		slog.Error("error collecting rows",
			"error", err,
		)
		return nil, errors.NewDomainError(errors.ErrDB, "")
	}

	return banners, nil
}

func (s *bannerStorage) UpdateBanner(ctx context.Context, dto entity.UpdateBannerDTO) error {

	c, err := s.client.Exec(
		ctx,
		`UPDATE banners
		SET
			title = COALESCE($1, title),
			text = COALESCE($2, text),
			link = COALESCE($3, link),
			start_at = COALESCE($4, start_at),
			end_at = COALESCE($5, end_at),
			manual = COALESCE($6, manual),
			published = COALESCE($7, published),
			updated_at = NOW()
		WHERE id = $8;`,
		dto.Title, dto.Text, dto.Link, dto.Start, dto.End, dto.Manual, dto.Published, dto.BannerID,
	)
	if err != nil {
		slog.Error("error updating banners",
			"error", err,
		)
		return writeError(err)
	}
	if c.RowsAffected() == 0 {
		slog.Debug("error updating banners, id not found", "banner_id", dto.BannerID)
		return errors.NewDomainError(errors.ErrNoDataFound, "")
	}

	return nil
}

func writeError(err error) error {
	var pgErr *pgconn.PgError
	if stdErrors.As(err, &pgErr) && pgErr.Code == pgerrcode.StringDataRightTruncationDataException {
		return errors.NewDomainError(errors.ErrInvalidInput, "value too long")
	}
	return errors.NewDomainError(errors.ErrDB, "")
}
