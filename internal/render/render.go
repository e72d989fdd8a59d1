// Package render turns posts into the HTML fragments shown on the page:
// the card grid, the expanded preview, the preview error panel and the
// "no posts" fallback.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"blog_feed/internal/domain"
)

const (
	DefaultReadingTime = 5
	MaxVisibleTags     = 3

	ExcerptFallback     = "Click to read this insightful post about my development journey..."
	DescriptionFallback = "This post shares insights from my journey in web development, including personal experiences, lessons learned, and practical tips for fellow developers and career changers."
	NoDescription       = "No description available"

	shortDateLayout = "Jan 2, 2006"
	longDateLayout  = "January 2, 2006"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Options struct {
	// ProfileURL is the call-to-action target of the fallback panel.
	ProfileURL string
	// PickColor chooses the placeholder background. Defaults to RandomColor.
	PickColor ColorPicker
}

type Renderer struct {
	tmpl       *template.Template
	policy     *bluemonday.Policy
	profileURL string
	pickColor  ColorPicker
}

func New(opts Options) *Renderer {
	pick := opts.PickColor
	if pick == nil {
		pick = RandomColor
	}

	return &Renderer{
		tmpl:       templates,
		policy:     bluemonday.StrictPolicy(),
		profileURL: opts.ProfileURL,
		pickColor:  pick,
	}
}

// CardView is the render-ready form of one post card.
type CardView struct {
	Index         int
	Title         string
	URL           string
	CoverImage    template.URL
	PublishedDate string
	ReadingTime   int
	Excerpt       template.HTML
	Tags          []string
	MoreTags      int
	Reactions     int
	Comments      int
}

// PreviewView is the render-ready form of the expanded preview.
type PreviewView struct {
	Title         string
	CoverImage    template.URL
	PublishedDate string
	ReadingTime   int
	Description   template.HTML
	Tags          []string
	Reactions     int
	Comments      int
}

func (r *Renderer) Card(post domain.Post, index int) CardView {
	cover := safeURL(post.CoverImageURL)
	if cover == "" {
		cover = Placeholder(post.Title, r.pickColor)
	}

	excerpt := r.sanitize(post.Description)
	if excerpt == "" {
		excerpt = ExcerptFallback
	}

	tags := post.Tags
	more := 0
	if len(tags) > MaxVisibleTags {
		more = len(tags) - MaxVisibleTags
		tags = tags[:MaxVisibleTags]
	}

	return CardView{
		Index:         index,
		Title:         post.Title,
		URL:           post.URL,
		CoverImage:    cover,
		PublishedDate: formatDate(post, shortDateLayout),
		ReadingTime:   readingTime(post.ReadingTimeMinutes),
		Excerpt:       excerpt,
		Tags:          tags,
		MoreTags:      more,
		Reactions:     deref(post.ReactionsCount),
		Comments:      deref(post.CommentsCount),
	}
}

// Grid renders every post as a card, indexed by position.
func (r *Renderer) Grid(posts []domain.Post) (template.HTML, error) {
	cards := make([]CardView, len(posts))
	for i, p := range posts {
		cards[i] = r.Card(p, i)
	}
	return r.execute("grid", cards)
}

// Preview renders the expanded preview of a post. Posts that fail
// validation return an error wrapping domain.ErrPreviewRender.
func (r *Renderer) Preview(post domain.Post) (template.HTML, error) {
	if err := post.Validate(); err != nil {
		return "", err
	}

	description := r.sanitize(post.Description)
	if description == "" {
		description = DescriptionFallback
	}

	view := PreviewView{
		Title:         post.Title,
		CoverImage:    safeURL(post.CoverImageURL),
		PublishedDate: formatDate(post, longDateLayout),
		ReadingTime:   readingTime(post.ReadingTimeMinutes),
		Description:   description,
		Tags:          post.Tags,
		Reactions:     deref(post.ReactionsCount),
		Comments:      deref(post.CommentsCount),
	}

	out, err := r.execute("preview", view)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrPreviewRender, err)
	}
	return out, nil
}

// PreviewError renders the degraded panel shown when Preview fails.
func (r *Renderer) PreviewError(post domain.Post) template.HTML {
	description := r.sanitize(post.Description)
	if description == "" {
		description = NoDescription
	}
	out, err := r.execute("preview_error", description)
	if err != nil {
		return template.HTML(`<div class="modal-error"><p>Unable to load preview.</p></div>`)
	}
	return out
}

func (r *Renderer) Loading() template.HTML {
	out, _ := r.execute("loading", nil)
	return out
}

func (r *Renderer) Fallback() template.HTML {
	out, err := r.execute("fallback", r.profileURL)
	if err != nil {
		return template.HTML(`<div class="blog-fallback"><h3>More posts coming soon!</h3></div>`)
	}
	return out
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// sanitize strips markup from API supplied text. The policy output is
// already HTML-escaped.
func (r *Renderer) sanitize(s *string) template.HTML {
	if s == nil {
		return ""
	}
	clean := strings.TrimSpace(r.policy.Sanitize(*s))
	return template.HTML(clean)
}

func formatDate(post domain.Post, layout string) string {
	if post.PublishedAt.IsZero() {
		return ""
	}
	return post.PublishedAt.Format(layout)
}

func readingTime(minutes *float64) int {
	if minutes == nil || *minutes <= 0 {
		return DefaultReadingTime
	}
	return int(math.Ceil(*minutes))
}

func deref(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

// safeURL admits only absolute http(s) image URLs.
func safeURL(s *string) template.URL {
	if s == nil || *s == "" {
		return ""
	}
	u, err := url.Parse(*s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return template.URL(u.String())
}
