package wordpress

import (
	"fmt"
	"strings"
	"time"
)

// gmtLayout is the zone-less layout WordPress uses for *_gmt fields.
const gmtLayout = "2006-01-02T15:04:05"

type PostStatus string

const (
	StatusPublish PostStatus = "publish"
	StatusFuture  PostStatus = "future"
	StatusDraft   PostStatus = "draft"
	StatusPending PostStatus = "pending"
	StatusPrivate PostStatus = "private"
)

// Post is a WordPress post as returned by the REST API.
type Post struct {
	ID         int64
	Status     PostStatus
	Link       string
	Title      string
	Content    string
	Date       time.Time
	Categories []int
	Tags       []int
}

// PostInput describes a post to create. A PublishAt in the future schedules
// the post; a zero or past PublishAt publishes immediately.
type PostInput struct {
	Title      string
	Content    string
	Categories []int
	Tags       []int
	PublishAt  time.Time
}

// ListFilter narrows ListPosts. Zero values are not sent.
type ListFilter struct {
	Status  PostStatus
	After   time.Time
	Before  time.Time
	PerPage int
}

type rendered struct {
	Rendered string `json:"rendered"`
}

type apiPost struct {
	ID         int64    `json:"id"`
	DateGMT    gmtTime  `json:"date_gmt"`
	Status     string   `json:"status"`
	Link       string   `json:"link"`
	Title      rendered `json:"title"`
	Content    rendered `json:"content"`
	Categories []int    `json:"categories"`
	Tags       []int    `json:"tags"`
}

func (p apiPost) toPost() Post {
	return Post{
		ID:         p.ID,
		Status:     PostStatus(p.Status),
		Link:       p.Link,
		Title:      p.Title.Rendered,
		Content:    p.Content.Rendered,
		Date:       time.Time(p.DateGMT),
		Categories: p.Categories,
		Tags:       p.Tags,
	}
}

type createPostRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Status     string `json:"status"`
	DateGMT    string `json:"date_gmt,omitempty"`
	Categories []int  `json:"categories,omitempty"`
	Tags       []int  `json:"tags,omitempty"`
}

type gmtTime time.Time

func (t *gmtTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*t = gmtTime{}
		return nil
	}
	parsed, err := time.ParseInLocation(gmtLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("parse date_gmt %q: %w", s, err)
	}
	*t = gmtTime(parsed)
	return nil
}
