package devto

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Article represents one entry of the dev.to article listing.
type Article struct {
	ID                   int64         `json:"id"`
	Title                string        `json:"title"`
	Description          *string       `json:"description"`
	URL                  string        `json:"url"`
	PublishedAt          string        `json:"published_at"`
	CoverImage           *string       `json:"cover_image"`
	ReadingTimeMinutes   NullableFloat `json:"reading_time_minutes"`
	PublicReactionsCount NullableInt   `json:"public_reactions_count"`
	CommentsCount        NullableInt   `json:"comments_count"`
	TagList              TagList       `json:"tag_list"`
}

// NullableFloat accepts a JSON number or a numeric string. Any other value
// leaves it unset so the card falls back to its default.
type NullableFloat struct {
	Value *float64
}

func (f *NullableFloat) UnmarshalJSON(data []byte) error {
	f.Value = nil
	if n, ok := parseNumber(data); ok {
		f.Value = &n
	}
	return nil
}

// NullableInt is the integer counterpart of NullableFloat. Fractional
// values are rounded.
type NullableInt struct {
	Value *int
}

func (i *NullableInt) UnmarshalJSON(data []byte) error {
	i.Value = nil
	if n, ok := parseNumber(data); ok {
		v := int(math.Round(n))
		i.Value = &v
	}
	return nil
}

func parseNumber(data []byte) (float64, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// TagList decodes both shapes dev.to uses: a JSON array on listings and a
// comma separated string on single articles. Array items that are not
// strings are stringified when numeric and dropped otherwise.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch kind := jsonKind(data); kind {
	case "null":
		*t = nil
		return nil

	case "array":
		var items []any
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		tags := make([]string, 0, len(items))
		for _, item := range items {
			switch v := item.(type) {
			case string:
				tags = append(tags, v)
			case float64:
				tags = append(tags, strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		*t = tags
		return nil

	case "string":
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return err
		}
		var tags []string
		for _, tag := range strings.Split(joined, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		*t = tags
		return nil

	default:
		return &json.UnmarshalTypeError{Value: kind, Type: reflect.TypeOf(TagList{})}
	}
}

// jsonKind names the JSON value type of data the way encoding/json reports
// it in type errors.
func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "empty"
	}
	switch data[0] {
	case 'n':
		return "null"
	case '[':
		return "array"
	case '{':
		return "object"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	default:
		return "number"
	}
}
