package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"aiva/internal/domain"
)

type campaignRow struct {
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	Title         string         `db:"title"`
	Description   sql.NullString `db:"description"`
	ICPID         sql.NullString `db:"icp_id"`
	StartDate     time.Time      `db:"start_date"`
	EndDate       time.Time      `db:"end_date"`
	Contents      pq.StringArray `db:"contents"`
	Graphics      pq.StringArray `db:"graphics"`
	CalendarItems pq.StringArray `db:"calendar_items"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func (r campaignRow) toDomain() domain.Campaign {
	return domain.Campaign{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description.String,
		ICPID:         r.ICPID.String,
		StartDate:     r.StartDate.UTC(),
		EndDate:       r.EndDate.UTC(),
		Contents:      fromArray(r.Contents),
		Graphics:      fromArray(r.Graphics),
		CalendarItems: fromArray(r.CalendarItems),
		CreatedAt:     r.CreatedAt.UTC(),
	}
}

const campaignColumns = `id, user_id, title, description, icp_id, start_date, end_date,
	contents, graphics, calendar_items, created_at, updated_at`

type CampaignStore struct {
	db *sqlx.DB
}

func NewCampaignStore(db *sqlx.DB) *CampaignStore {
	return &CampaignStore{db: db}
}

func (s *CampaignStore) List(ctx context.Context, userID string) ([]domain.Campaign, error) {
	var rows []campaignRow
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE user_id = $1 ORDER BY created_at, id`
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, userID); err != nil {
		return nil, remoteErr("list", domain.CollectionCampaigns, err)
	}

	items := make([]domain.Campaign, len(rows))
	for i, r := range rows {
		items[i] = r.toDomain()
	}
	return items, nil
}

func (s *CampaignStore) Insert(ctx context.Context, userID string, c domain.Campaign) (domain.Campaign, error) {
	query := `
		INSERT INTO campaigns (
			user_id, title, description, icp_id, start_date, end_date,
			contents, graphics, calendar_items
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + campaignColumns

	var row campaignRow
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		userID,
		c.Title,
		c.Description,
		nullString(c.ICPID),
		c.StartDate,
		c.EndDate,
		stringArray(c.Contents),
		stringArray(c.Graphics),
		stringArray(c.CalendarItems),
	).StructScan(&row)
	if err != nil {
		return domain.Campaign{}, remoteErr("insert", domain.CollectionCampaigns, err)
	}
	return row.toDomain(), nil
}

func (s *CampaignStore) Update(ctx context.Context, userID string, c domain.Campaign) error {
	query := `
		UPDATE campaigns SET
			title = $3,
			description = $4,
			icp_id = $5,
			start_date = $6,
			end_date = $7,
			contents = $8,
			graphics = $9,
			calendar_items = $10,
			updated_at = NOW()
		WHERE id::text = $1 AND user_id = $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		c.ID,
		userID,
		c.Title,
		c.Description,
		nullString(c.ICPID),
		c.StartDate,
		c.EndDate,
		stringArray(c.Contents),
		stringArray(c.Graphics),
		stringArray(c.CalendarItems),
	)
	if err != nil {
		return remoteErr("update", domain.CollectionCampaigns, err)
	}
	return affected(res, domain.CollectionCampaigns, c.ID)
}

func (s *CampaignStore) Delete(ctx context.Context, userID, id string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM campaigns WHERE id::text = $1 AND user_id = $2", id, userID)
	return remoteErr("delete", domain.CollectionCampaigns, err)
}
