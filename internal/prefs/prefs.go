// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package prefs persists the visitor's light/dark theme choice and keeps
// the rendered page's marker in agreement with it.
package prefs

// Theme is the visual mode of the site.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Key is the fixed storage key of the theme preference.
const Key = "theme"

// ParseTheme accepts only the literal values "light" and "dark".
// Anything else falls back to light.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Opposite returns the other theme.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// KV is durable key/value storage on the visitor's side.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Marker applies a theme to whatever the visitor sees.
type Marker interface {
	Apply(t Theme)
}

// Store reads the persisted theme once and funnels every change through
// both the KV and the marker.
type Store struct {
	kv      KV
	marker  Marker
	current Theme
}

// NewStore loads the persisted theme and applies it to marker.
func NewStore(kv KV, marker Marker) *Store {
	s := &Store{kv: kv, marker: marker, current: ThemeLight}
	if v, ok := kv.Get(Key); ok {
		s.current = ParseTheme(v)
	}
	marker.Apply(s.current)
	return s
}

// Get returns the theme in effect.
func (s *Store) Get() Theme {
	return s.current
}

// Set persists t and applies it.
func (s *Store) Set(t Theme) {
	t = ParseTheme(string(t))
	s.current = t
	s.kv.Set(Key, string(t))
	s.marker.Apply(t)
}

// Toggle flips the theme and returns the new value.
func (s *Store) Toggle() Theme {
	s.Set(s.current.Opposite())
	return s.current
}
