// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prefs

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type memKV map[string]string

func (m memKV) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m memKV) Set(key, value string) { m[key] = value }

func TestNewStore_Defaults(t *testing.T) {
	tests := []struct {
		name   string
		stored map[string]string
		want   Theme
		class  string
	}{
		{"absent", nil, ThemeLight, ""},
		{"light", map[string]string{Key: "light"}, ThemeLight, ""},
		{"dark", map[string]string{Key: "dark"}, ThemeDark, "dark"},
		{"unrecognized", map[string]string{Key: "DARK"}, ThemeLight, ""},
		{"garbage", map[string]string{Key: "blue"}, ThemeLight, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := memKV{}
			for k, v := range tt.stored {
				kv[k] = v
			}
			var m ClassMarker
			s := NewStore(kv, &m)
			if s.Get() != tt.want {
				t.Errorf("Get: got %q, want %q", s.Get(), tt.want)
			}
			if m.Class != tt.class {
				t.Errorf("marker: got %q, want %q", m.Class, tt.class)
			}
		})
	}
}

func TestToggle_PersistsAndMarks(t *testing.T) {
	kv := memKV{}
	var m ClassMarker
	s := NewStore(kv, &m)

	if got := s.Toggle(); got != ThemeDark {
		t.Fatalf("first toggle: got %q", got)
	}
	if kv[Key] != "dark" || m.Class != "dark" {
		t.Errorf("after first toggle: kv=%q marker=%q", kv[Key], m.Class)
	}

	if got := s.Toggle(); got != ThemeLight {
		t.Fatalf("second toggle: got %q", got)
	}
	if kv[Key] != "light" || m.Class != "" {
		t.Errorf("after second toggle: kv=%q marker=%q", kv[Key], m.Class)
	}
}

func TestToggle_TwiceRestoresOriginal(t *testing.T) {
	for _, start := range []Theme{ThemeLight, ThemeDark} {
		kv := memKV{Key: string(start)}
		var m ClassMarker
		s := NewStore(kv, &m)
		before := m.Class

		s.Toggle()
		s.Toggle()

		if kv[Key] != string(start) || m.Class != before {
			t.Errorf("start %q: kv=%q marker=%q", start, kv[Key], m.Class)
		}
	}
}

func TestCookieKV(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/theme", nil)
	r.AddCookie(&http.Cookie{Name: Key, Value: "dark"})
	w := httptest.NewRecorder()

	var m ClassMarker
	s := NewStore(NewCookieKV(w, r, true), &m)
	if s.Get() != ThemeDark {
		t.Fatalf("Get: got %q", s.Get())
	}
	s.Toggle()

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies: got %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != Key || c.Value != "light" {
		t.Errorf("cookie: %s=%s", c.Name, c.Value)
	}
	if !c.Secure || c.SameSite != http.SameSiteLaxMode || c.MaxAge <= 0 {
		t.Errorf("cookie attributes: %+v", c)
	}
	if m.Class != "" {
		t.Errorf("marker: got %q", m.Class)
	}
}

func TestFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if th, class := FromRequest(r); th != ThemeLight || class != "" {
		t.Errorf("no cookie: %q %q", th, class)
	}
	r.AddCookie(&http.Cookie{Name: Key, Value: "dark"})
	if th, class := FromRequest(r); th != ThemeDark || class != "dark" {
		t.Errorf("dark cookie: %q %q", th, class)
	}
}
