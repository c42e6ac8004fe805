package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"aiva/internal/domain"
)

type icpRow struct {
	ID           string         `db:"id"`
	UserID       string         `db:"user_id"`
	Name         string         `db:"name"`
	Industry     string         `db:"industry"`
	TechStack    pq.StringArray `db:"tech_stack"`
	Location     string         `db:"location"`
	Persona      pq.StringArray `db:"persona"`
	BusinessSize string         `db:"business_size"`
	Tone         string         `db:"tone"`
	Designations pq.StringArray `db:"designations"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r icpRow) toDomain() domain.ICP {
	return domain.ICP{
		ID:           r.ID,
		Name:         r.Name,
		Industry:     r.Industry,
		TechStack:    fromArray(r.TechStack),
		Location:     r.Location,
		Persona:      fromArray(r.Persona),
		BusinessSize: r.BusinessSize,
		Tone:         r.Tone,
		Designations: fromArray(r.Designations),
		CreatedAt:    r.CreatedAt.UTC(),
	}
}

const icpColumns = `id, user_id, name, industry, tech_stack, location, persona,
	business_size, tone, designations, created_at, updated_at`

type ICPStore struct {
	db *sqlx.DB
}

func NewICPStore(db *sqlx.DB) *ICPStore {
	return &ICPStore{db: db}
}

func (s *ICPStore) List(ctx context.Context, userID string) ([]domain.ICP, error) {
	var rows []icpRow
	query := `SELECT ` + icpColumns + ` FROM icps WHERE user_id = $1 ORDER BY created_at, id`
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, userID); err != nil {
		return nil, remoteErr("list", domain.CollectionICPs, err)
	}

	items := make([]domain.ICP, len(rows))
	for i, r := range rows {
		items[i] = r.toDomain()
	}
	return items, nil
}

func (s *ICPStore) Insert(ctx context.Context, userID string, icp domain.ICP) (domain.ICP, error) {
	query := `
		INSERT INTO icps (
			user_id, name, industry, tech_stack, location, persona,
			business_size, tone, designations
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + icpColumns

	var row icpRow
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		userID,
		icp.Name,
		icp.Industry,
		stringArray(icp.TechStack),
		icp.Location,
		stringArray(icp.Persona),
		icp.BusinessSize,
		icp.Tone,
		stringArray(icp.Designations),
	).StructScan(&row)
	if err != nil {
		return domain.ICP{}, remoteErr("insert", domain.CollectionICPs, err)
	}
	return row.toDomain(), nil
}

func (s *ICPStore) Update(ctx context.Context, userID string, icp domain.ICP) error {
	query := `
		UPDATE icps SET
			name = $3,
			industry = $4,
			tech_stack = $5,
			location = $6,
			persona = $7,
			business_size = $8,
			tone = $9,
			designations = $10,
			updated_at = NOW()
		WHERE id::text = $1 AND user_id = $2`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		icp.ID,
		userID,
		icp.Name,
		icp.Industry,
		stringArray(icp.TechStack),
		icp.Location,
		stringArray(icp.Persona),
		icp.BusinessSize,
		icp.Tone,
		stringArray(icp.Designations),
	)
	if err != nil {
		return remoteErr("update", domain.CollectionICPs, err)
	}
	return affected(res, domain.CollectionICPs, icp.ID)
}

func (s *ICPStore) Delete(ctx context.Context, userID, id string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM icps WHERE id::text = $1 AND user_id = $2", id, userID)
	return remoteErr("delete", domain.CollectionICPs, err)
}
