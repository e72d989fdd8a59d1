package devto

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"blog_feed/internal/domain"
)

const (
	SourceID   = "devto"
	SourceName = "DEV Community"

	DefaultBaseURL = "https://dev.to/api/articles"
)

// Config holds dev.to source configuration.
type Config struct {
	BaseURL  string
	Username string
	Timeout  time.Duration
}

// Source implements feed.Source for the dev.to article API.
type Source struct {
	httpClient *http.Client
	baseURL    string
	username   string
	logger     *slog.Logger
}

// New creates a new dev.to source. A zero timeout leaves requests bounded
// only by their context.
func New(cfg Config, logger *slog.Logger) *Source {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  baseURL,
		username: cfg.Username,
		logger:   logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchPage fetches a single page of the author's articles. There is no
// retry: every failure is returned wrapped in domain.ErrNetwork.
func (s *Source) FetchPage(ctx context.Context, page, perPage int) ([]domain.Post, error) {
	articles, err := s.doRequest(ctx, s.pageURL(page, perPage))
	if err != nil {
		return nil, fmt.Errorf("%w: fetch page %d: %w", domain.ErrNetwork, page, err)
	}

	s.logger.Debug("fetched page",
		"page", page,
		"articles", len(articles),
	)

	return s.transform(articles), nil
}

func (s *Source) pageURL(page, perPage int) string {
	q := url.Values{}
	q.Set("username", s.username)
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	return s.baseURL + "?" + q.Encode()
}

func (s *Source) doRequest(ctx context.Context, url string) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "BlogFeed/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	// Only a body that is not a JSON array fails the page. Entries are
	// decoded one by one so a malformed post cannot take its page down.
	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	articles := make([]Article, 0, len(raw))
	for i, entry := range raw {
		var a Article
		if err := json.Unmarshal(entry, &a); err != nil {
			s.logger.Warn("skipping malformed article",
				"position", i,
				"error", err,
			)
			continue
		}
		articles = append(articles, a)
	}

	return articles, nil
}

func (s *Source) transform(articles []Article) []domain.Post {
	posts := make([]domain.Post, 0, len(articles))

	for _, a := range articles {
		post := domain.Post{
			ID:                 a.ID,
			Title:              a.Title,
			URL:                a.URL,
			CoverImageURL:      a.CoverImage,
			Description:        a.Description,
			ReadingTimeMinutes: a.ReadingTimeMinutes.Value,
			ReactionsCount:     a.PublicReactionsCount.Value,
			CommentsCount:      a.CommentsCount.Value,
			Tags:               []string(a.TagList),
		}

		if a.CoverImage != nil && *a.CoverImage == "" {
			post.CoverImageURL = nil
		}

		publishedAt, err := time.Parse(time.RFC3339, a.PublishedAt)
		if err != nil {
			// Kept: the card falls back to an empty date.
			s.logger.Warn("failed to parse date",
				"external_id", a.ID,
				"date", a.PublishedAt,
			)
		} else {
			post.PublishedAt = publishedAt
		}

		posts = append(posts, post)
	}

	return posts
}
