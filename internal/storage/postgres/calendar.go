package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"aiva/internal/domain"
)

type calendarRow struct {
	ID                 string         `db:"id"`
	UserID             string         `db:"user_id"`
	Title              string         `db:"title"`
	Date               time.Time      `db:"date"`
	ContentID          sql.NullString `db:"content_id"`
	GraphicID          sql.NullString `db:"graphic_id"`
	Platform           string         `db:"platform"`
	Status             sql.NullString `db:"status"`
	Assignee           sql.NullString `db:"assignee"`
	SocialMediaDetails socialDetails  `db:"social_media_details"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

func (r calendarRow) toDomain() domain.CalendarItem {
	status := domain.CalendarStatusDraft
	if r.Status.Valid && r.Status.String != "" {
		status = domain.CalendarStatus(r.Status.String)
	}
	return domain.CalendarItem{
		ID:                 r.ID,
		Title:              r.Title,
		Date:               r.Date.UTC(),
		ContentID:          r.ContentID.String,
		GraphicID:          r.GraphicID.String,
		Platform:           r.Platform,
		Status:             status,
		Assignee:           r.Assignee.String,
		SocialMediaDetails: r.SocialMediaDetails.Details,
	}
}

func calendarStatus(s domain.CalendarStatus) string {
	if s == "" {
		return string(domain.CalendarStatusDraft)
	}
	return string(s)
}

const calendarColumns = `id, user_id, title, date, content_id, graphic_id, platform,
	status, assignee, social_media_details, created_at, updated_at`

type CalendarStore struct {
	db *sqlx.DB
}

func NewCalendarStore(db *sqlx.DB) *CalendarStore {
	return &CalendarStore{db: db}
}

func (s *CalendarStore) List(ctx context.Context, userID string) ([]domain.CalendarItem, error) {
	var rows []calendarRow
	query := `SELECT ` + calendarColumns + ` FROM calendar_items WHERE user_id = $1 ORDER BY date, id`
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, userID); err != nil {
		return nil, remoteErr("list", domain.CollectionCalendarItems, err)
	}

	items := make([]domain.CalendarItem, len(rows))
	for i, r := range rows {
		items[i] = r.toDomain()
	}
	return items, nil
}

func (s *CalendarStore) Insert(ctx context.Context, userID string, item domain.CalendarItem) (domain.CalendarItem, error) {
	query := `
		INSERT INTO calendar_items (
			user_id, title, date, content_id, graphic_id, platform,
			status, assignee, social_media_details
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + calendarColumns

	var row calendarRow
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		userID,
		item.Title,
		item.Date,
		nullString(item.ContentID),
		nullString(item.GraphicID),
		item.Platform,
		calendarStatus(item.Status),
		nullString(item.Assignee),
		socialDetails{Details: item.SocialMediaDetails},
	).StructScan(&row)
	if err != nil {
		return domain.CalendarItem{}, remoteErr("insert", domain.CollectionCalendarItems, err)
	}
	return row.toDomain(), nil
}

func (s *CalendarStore) Update(ctx context.Context, userID string, item domain.CalendarItem) error {
	query := `
		UPDATE calendar_items SET
			title = $3,
			date = $4,
			content_id = $5,
			graphic_id = $6,
			platform = $7,
			status = $8,
			assignee = $9,
			social_media_details = $10,
			updated_at = NOW()
		WHERE id::text = $1 AND user_id = $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		item.ID,
		userID,
		item.Title,
		item.Date,
		nullString(item.ContentID),
		nullString(item.GraphicID),
		item.Platform,
		calendarStatus(item.Status),
		nullString(item.Assignee),
		socialDetails{Details: item.SocialMediaDetails},
	)
	if err != nil {
		return remoteErr("update", domain.CollectionCalendarItems, err)
	}
	return affected(res, domain.CollectionCalendarItems, item.ID)
}

func (s *CalendarStore) Delete(ctx context.Context, userID, id string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM calendar_items WHERE id::text = $1 AND user_id = $2", id, userID)
	return remoteErr("delete", domain.CollectionCalendarItems, err)
}
