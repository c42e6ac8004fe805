package postgres

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"aiva/internal/domain"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func stringArray(s []string) pq.StringArray {
	return pq.StringArray(s)
}

func fromArray(a pq.StringArray) []string {
	if a == nil {
		return []string{}
	}
	return []string(a)
}

// socialDetails maps the nullable social_media_details JSONB column.
type socialDetails struct {
	Details *domain.SocialMediaDetails
}

func (s socialDetails) Value() (driver.Value, error) {
	if s.Details == nil {
		return nil, nil
	}
	raw, err := json.Marshal(s.Details)
	if err != nil {
		return nil, err
	}
	// lib/pq sends []byte as bytea; JSONB needs text.
	return string(raw), nil
}

func (s *socialDetails) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		s.Details = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan social_media_details: unsupported type %T", src)
	}

	var details domain.SocialMediaDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return fmt.Errorf("scan social_media_details: %w", err)
	}
	if details.Hashtags == nil {
		details.Hashtags = []string{}
	}
	s.Details = &details
	return nil
}

func remoteErr(op, collection string, err error) error {
	if err == nil {
		return nil
	}
	return &domain.RemoteError{Op: op, Collection: collection, Err: err}
}

// affected turns an UPDATE that matched nothing into domain.ErrNotFound.
func affected(res sql.Result, collection, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return remoteErr("update", collection, err)
	}
	if n == 0 {
		return fmt.Errorf("update %s %s: %w", collection, id, domain.ErrNotFound)
	}
	return nil
}
