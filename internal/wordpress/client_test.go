package wordpress

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(
		SiteConfig{URL: srv.URL + "/", Username: "editor", AppPassword: "app-pass"},
		Config{Timeout: 5 * time.Second, MaxAttempts: 3, InitialBackoff: time.Millisecond, MaxBackoff: 5 * time.Millisecond},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	require.NoError(t, err)
	c.now = func() time.Time { return time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC) }
	return c
}

func TestNew_RequiresSiteURL(t *testing.T) {
	_, err := New(SiteConfig{}, Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorIs(t, err, ErrNoSite)
}

func TestCreatePost_FutureDateSchedules(t *testing.T) {
	var got createPostRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, postsPath, r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "editor", user)
		assert.Equal(t, "app-pass", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":42,"status":"future","link":"https://blog.example.com/?p=42",
			"date_gmt":"2024-04-10T09:30:00","title":{"rendered":"Launch"},"content":{"rendered":"<p>Body</p>"},
			"categories":[3],"tags":[7]}`)
	})

	post, err := c.CreatePost(context.Background(), PostInput{
		Title:      "Launch",
		Content:    "Body",
		Categories: []int{3},
		Tags:       []int{7},
		PublishAt:  time.Date(2024, 4, 10, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "future", got.Status)
	assert.Equal(t, "2024-04-10T09:30:00", got.DateGMT)
	assert.Equal(t, []int{3}, got.Categories)

	assert.Equal(t, int64(42), post.ID)
	assert.Equal(t, StatusFuture, post.Status)
	assert.Equal(t, time.Date(2024, 4, 10, 9, 30, 0, 0, time.UTC), post.Date)
	assert.Equal(t, "Launch", post.Title)
}

func TestCreatePost_PastDatePublishesImmediately(t *testing.T) {
	var got createPostRequest
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"id":1,"status":"publish","date_gmt":"2024-04-01T00:00:00"}`)
	})

	post, err := c.CreatePost(context.Background(), PostInput{
		Title:     "Recap",
		PublishAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "publish", got.Status)
	assert.Empty(t, got.DateGMT)
	assert.Equal(t, StatusPublish, post.Status)
}

func TestListPosts_SendsFilter(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		q := r.URL.Query()
		assert.Equal(t, "future", q.Get("status"))
		assert.Equal(t, "2024-04-01T00:00:00Z", q.Get("after"))
		assert.Equal(t, "2024-05-01T00:00:00Z", q.Get("before"))
		assert.Equal(t, "50", q.Get("per_page"))
		_, _ = io.WriteString(w, `[{"id":1,"status":"future","date_gmt":"2024-04-02T10:00:00"},{"id":2,"status":"future","date_gmt":null}]`)
	})

	posts, err := c.ListPosts(context.Background(), ListFilter{
		Status:  StatusFuture,
		After:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Before:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		PerPage: 50,
	})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, int64(1), posts[0].ID)
	assert.True(t, posts[1].Date.IsZero())
}

func TestDo_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `[]`)
	})

	posts, err := c.ListPosts(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"code":"rest_cannot_create"}`)
	})

	_, err := c.CreatePost(context.Background(), PostInput{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.ListPosts(context.Background(), ListFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), calls.Load())
}
