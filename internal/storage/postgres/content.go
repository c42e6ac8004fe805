package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"aiva/internal/domain"
)

type contentRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Title       string         `db:"title"`
	Content     string         `db:"content"`
	Type        string         `db:"type"`
	ICPID       sql.NullString `db:"icp_id"`
	AIGenerated sql.NullBool   `db:"ai_generated"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r contentRow) toDomain() domain.ContentItem {
	return domain.ContentItem{
		ID:          r.ID,
		Title:       r.Title,
		Content:     r.Content,
		Type:        domain.ContentType(r.Type),
		ICPID:       r.ICPID.String,
		AIGenerated: r.AIGenerated.Valid && r.AIGenerated.Bool,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

const contentColumns = `id, user_id, title, content, type, icp_id, ai_generated, created_at, updated_at`

type ContentStore struct {
	db *sqlx.DB
}

func NewContentStore(db *sqlx.DB) *ContentStore {
	return &ContentStore{db: db}
}

func (s *ContentStore) List(ctx context.Context, userID string) ([]domain.ContentItem, error) {
	var rows []contentRow
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE user_id = $1 ORDER BY created_at, id`
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, userID); err != nil {
		return nil, remoteErr("list", domain.CollectionContents, err)
	}

	items := make([]domain.ContentItem, len(rows))
	for i, r := range rows {
		items[i] = r.toDomain()
	}
	return items, nil
}

func (s *ContentStore) Insert(ctx context.Context, userID string, item domain.ContentItem) (domain.ContentItem, error) {
	query := `
		INSERT INTO content_items (user_id, title, content, type, icp_id, ai_generated)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + contentColumns

	var row contentRow
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		userID,
		item.Title,
		item.Content,
		string(item.Type),
		nullString(item.ICPID),
		item.AIGenerated,
	).StructScan(&row)
	if err != nil {
		return domain.ContentItem{}, remoteErr("insert", domain.CollectionContents, err)
	}
	return row.toDomain(), nil
}

func (s *ContentStore) Update(ctx context.Context, userID string, item domain.ContentItem) error {
	query := `
		UPDATE content_items SET
			title = $3,
			content = $4,
			type = $5,
			icp_id = $6,
			ai_generated = $7,
			updated_at = NOW()
		WHERE id::text = $1 AND user_id = $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		item.ID,
		userID,
		item.Title,
		item.Content,
		string(item.Type),
		nullString(item.ICPID),
		item.AIGenerated,
	)
	if err != nil {
		return remoteErr("update", domain.CollectionContents, err)
	}
	return affected(res, domain.CollectionContents, item.ID)
}

func (s *ContentStore) Delete(ctx context.Context, userID, id string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM content_items WHERE id::text = $1 AND user_id = $2", id, userID)
	return remoteErr("delete", domain.CollectionContents, err)
}
