package domain

import (
	"fmt"
	"time"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeLight
)

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

type ThemePreference struct {
	VisitorID string    `db:"visitor_id"`
	Theme     Theme     `db:"theme"`
	UpdatedAt time.Time `db:"updated_at"`
}
