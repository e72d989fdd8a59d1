package render

import (
	"fmt"
	"hash/fnv"
	"html"
	"html/template"
	"math/rand/v2"
	"net/url"
	"strings"
)

const placeholderTitleLimit = 30

// PlaceholderColors are the backgrounds a generated cover may use.
var PlaceholderColors = []string{"6366f1", "3b82f6", "8b5cf6", "f59e0b", "ef4444"}

// ColorPicker returns an index in [0, n) for the given title.
type ColorPicker func(title string, n int) int

func RandomColor(_ string, n int) int {
	return rand.IntN(n)
}

// HashColor derives the colour from the title so output is reproducible.
func HashColor(title string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	return int(h.Sum32() % uint32(n))
}

// PlaceholderText is the text embedded in a generated cover.
func PlaceholderText(title string) string {
	runes := []rune(title)
	if len(runes) > placeholderTitleLimit {
		runes = runes[:placeholderTitleLimit]
	}
	return string(runes)
}

// Placeholder builds a data URI SVG cover showing the truncated title.
func Placeholder(title string, pick ColorPicker) template.URL {
	color := PlaceholderColors[pick(title, len(PlaceholderColors))%len(PlaceholderColors)]
	text := encodeComponent(html.EscapeString(PlaceholderText(title)))

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="200" viewBox="0 0 400 200">`+
			`<rect width="400" height="200" fill="%%23%s"/>`+
			`<text x="50%%25" y="50%%25" text-anchor="middle" dy=".3em" fill="white" font-family="system-ui" font-size="14" font-weight="600">%s</text>`+
			`</svg>`,
		color, text,
	)
	return template.URL("data:image/svg+xml," + svg)
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
