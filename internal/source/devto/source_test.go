package devto

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog_feed/internal/domain"
	"blog_feed/testdata/utils"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestFetchPage_SendsQueryAndDecodes(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": 7,
				"title": "Go channels",
				"description": "All about channels",
				"url": "https://dev.to/jane/go-channels",
				"published_at": "2024-03-05T10:00:00Z",
				"cover_image": "https://img.example/c.png",
				"reading_time_minutes": 4,
				"public_reactions_count": 12,
				"comments_count": 3,
				"tag_list": ["go", "concurrency"]
			},
			{
				"id": 8,
				"title": "No extras",
				"url": "https://dev.to/jane/no-extras",
				"published_at": "2024-03-06T10:00:00Z",
				"cover_image": null,
				"tag_list": "a, b"
			}
		]`))
	}))
	defer srv.Close()

	src := New(Config{BaseURL: srv.URL, Username: "jane"}, testLogger())

	posts, err := src.FetchPage(context.Background(), 2, 6)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "jane", got.URL.Query().Get("username"))
	assert.Equal(t, "2", got.URL.Query().Get("page"))
	assert.Equal(t, "6", got.URL.Query().Get("per_page"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))

	require.Len(t, posts, 2)
	assert.Equal(t, "Go channels", posts[0].Title)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), posts[0].PublishedAt.UTC())
	require.NotNil(t, posts[0].CoverImageURL)
	assert.Equal(t, "https://img.example/c.png", *posts[0].CoverImageURL)
	require.NotNil(t, posts[0].ReactionsCount)
	assert.Equal(t, 12, *posts[0].ReactionsCount)
	assert.Equal(t, []string{"go", "concurrency"}, posts[0].Tags)

	assert.Nil(t, posts[1].CoverImageURL)
	assert.Nil(t, posts[1].Description)
	assert.Nil(t, posts[1].CommentsCount)
	assert.Equal(t, []string{"a", "b"}, posts[1].Tags)
}

func TestFetchPage_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := New(Config{BaseURL: srv.URL, Username: "jane"}, testLogger())

	posts, err := src.FetchPage(context.Background(), 1, 6)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Contains(t, err.Error(), "unexpected status: 500")
	assert.Nil(t, posts)
}

func TestFetchPage_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"not an array"}`))
	}))
	defer srv.Close()

	src := New(Config{BaseURL: srv.URL, Username: "jane"}, testLogger())

	_, err := src.FetchPage(context.Background(), 1, 6)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.Contains(t, err.Error(), "decode response")
}

func TestFetchPage_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	src := New(Config{BaseURL: srv.URL, Username: "jane"}, testLogger())

	_, err := src.FetchPage(context.Background(), 1, 6)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestFetchPage_KeepsPostWithBadDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "title": "x", "url": "https://dev.to/x", "published_at": "yesterday", "tag_list": []}]`))
	}))
	defer srv.Close()

	src := New(Config{BaseURL: srv.URL, Username: "jane"}, testLogger())

	posts, err := src.FetchPage(context.Background(), 1, 6)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.True(t, posts[0].PublishedAt.IsZero())
}

func TestTagList_UnmarshalJSON(t *testing.T) {
	var tags TagList
	require.NoError(t, json.Unmarshal([]byte(`null`), &tags))
	assert.Nil(t, tags)

	require.NoError(t, json.Unmarshal([]byte(`"go,  web ,"`), &tags))
	assert.Equal(t, TagList{"go", "web"}, tags)

	require.NoError(t, json.Unmarshal([]byte(`["go", 7, {"name": "x"}, null]`), &tags))
	assert.Equal(t, TagList{"go", "7"}, tags)

	err := json.Unmarshal([]byte(`42`), &tags)
	require.Error(t, err)
	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "number", typeErr.Value)
	assert.Contains(t, err.Error(), "TagList")
}

func TestNullableNumbers_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFloat *float64
		wantInt   *int
	}{
		{name: "number", input: `4.2`, wantFloat: utils.Ptr(4.2), wantInt: utils.Ptr(4)},
		{name: "numeric string", input: `" 5 "`, wantFloat: utils.Ptr(5.0), wantInt: utils.Ptr(5)},
		{name: "null", input: `null`},
		{name: "word", input: `"five"`},
		{name: "bool", input: `true`},
		{name: "array", input: `[1]`},
		{name: "object", input: `{"n": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f NullableFloat
			require.NoError(t, json.Unmarshal([]byte(tt.input), &f))
			assert.Equal(t, tt.wantFloat, f.Value)

			var i NullableInt
			require.NoError(t, json.Unmarshal([]byte(tt.input), &i))
			assert.Equal(t, tt.wantInt, i.Value)
		})
	}
}

func TestFetchPage_ToleratesWrongFieldTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 1, "title": "Good", "url": "https://dev.to/jane/good", "published_at": "2024-03-05T10:00:00Z",
			 "reading_time_minutes": 3, "public_reactions_count": 2, "tag_list": ["go"]},
			{"id": 2, "title": "Stringly", "url": "https://dev.to/jane/stringly", "published_at": "2024-03-06T10:00:00Z",
			 "reading_time_minutes": "5", "public_reactions_count": "7", "comments_count": {"n": 1},
			 "tag_list": ["web", 3, {"x": 1}]},
			{"id": 3, "title": "Odd tags", "url": "https://dev.to/jane/odd", "published_at": "2024-03-07T10:00:00Z",
			 "tag_list": 42},
			"not an article",
			{"id": 4, "title": "Last", "url": "https://dev.to/jane/last", "published_at": "2024-03-08T10:00:00Z"}
		]`))
	}))
	defer srv.Close()

	src := New(Config{BaseURL: srv.URL, Username: "jane"}, testLogger())

	posts, err := src.FetchPage(context.Background(), 1, 6)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.Equal(t, "Good", posts[0].Title)
	assert.Equal(t, utils.Ptr(3.0), posts[0].ReadingTimeMinutes)

	assert.Equal(t, "Stringly", posts[1].Title)
	assert.Equal(t, utils.Ptr(5.0), posts[1].ReadingTimeMinutes)
	assert.Equal(t, utils.Ptr(7), posts[1].ReactionsCount)
	assert.Nil(t, posts[1].CommentsCount)
	assert.Equal(t, []string{"web", "3"}, posts[1].Tags)

	assert.Equal(t, "Last", posts[2].Title)
	assert.Nil(t, posts[2].ReadingTimeMinutes)
	assert.Nil(t, posts[2].Tags)
}

func TestFetchPage_EmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	src := New(Config{BaseURL: srv.URL, Username: "jane"}, testLogger())

	posts, err := src.FetchPage(context.Background(), 1, 6)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestNew_DefaultBaseURL(t *testing.T) {
	src := New(Config{Username: "jane"}, testLogger())
	assert.Equal(t, DefaultBaseURL+"?page=1&per_page=6&username=jane", src.pageURL(1, 6))
	assert.Equal(t, SourceID, src.ID())
	assert.Equal(t, SourceName, src.Name())
}
