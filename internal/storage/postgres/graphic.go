package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"aiva/internal/domain"
)

type graphicRow struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Title     string         `db:"title"`
	ImageURL  string         `db:"image_url"`
	ContentID sql.NullString `db:"content_id"`
	Format    string         `db:"format"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r graphicRow) toDomain() domain.GraphicItem {
	return domain.GraphicItem{
		ID:        r.ID,
		Title:     r.Title,
		ImageURL:  r.ImageURL,
		ContentID: r.ContentID.String,
		Format:    r.Format,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

const graphicColumns = `id, user_id, title, image_url, content_id, format, created_at, updated_at`

type GraphicStore struct {
	db *sqlx.DB
}

func NewGraphicStore(db *sqlx.DB) *GraphicStore {
	return &GraphicStore{db: db}
}

func (s *GraphicStore) List(ctx context.Context, userID string) ([]domain.GraphicItem, error) {
	var rows []graphicRow
	query := `SELECT ` + graphicColumns + ` FROM graphics WHERE user_id = $1 ORDER BY created_at, id`
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, userID); err != nil {
		return nil, remoteErr("list", domain.CollectionGraphics, err)
	}

	items := make([]domain.GraphicItem, len(rows))
	for i, r := range rows {
		items[i] = r.toDomain()
	}
	return items, nil
}

func (s *GraphicStore) Insert(ctx context.Context, userID string, item domain.GraphicItem) (domain.GraphicItem, error) {
	query := `
		INSERT INTO graphics (user_id, title, image_url, content_id, format)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + graphicColumns

	var row graphicRow
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		userID,
		item.Title,
		item.ImageURL,
		nullString(item.ContentID),
		item.Format,
	).StructScan(&row)
	if err != nil {
		return domain.GraphicItem{}, remoteErr("insert", domain.CollectionGraphics, err)
	}
	return row.toDomain(), nil
}

func (s *GraphicStore) Update(ctx context.Context, userID string, item domain.GraphicItem) error {
	query := `
		UPDATE graphics SET
			title = $3,
			image_url = $4,
			content_id = $5,
			format = $6,
			updated_at = NOW()
		WHERE id::text = $1 AND user_id = $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		item.ID,
		userID,
		item.Title,
		item.ImageURL,
		nullString(item.ContentID),
		item.Format,
	)
	if err != nil {
		return remoteErr("update", domain.CollectionGraphics, err)
	}
	return affected(res, domain.CollectionGraphics, item.ID)
}

func (s *GraphicStore) Delete(ctx context.Context, userID, id string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM graphics WHERE id::text = $1 AND user_id = $2", id, userID)
	return remoteErr("delete", domain.CollectionGraphics, err)
}
