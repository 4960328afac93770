// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prefs

import (
	"net/http"
	"time"
)

const cookieMaxAge = 365 * 24 * time.Hour

// CookieKV stores preferences as cookies on one request/response pair.
// Values set during the request are visible to later Gets.
type CookieKV struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
	set    map[string]string
}

// NewCookieKV binds a KV to the current exchange.
func NewCookieKV(w http.ResponseWriter, r *http.Request, secure bool) *CookieKV {
	return &CookieKV{r: r, w: w, secure: secure, set: make(map[string]string)}
}

func (c *CookieKV) Get(key string) (string, bool) {
	if v, ok := c.set[key]; ok {
		return v, true
	}
	cookie, err := c.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func (c *CookieKV) Set(key, value string) {
	c.set[key] = value
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClassMarker records the class the page's <html> element must carry.
type ClassMarker struct {
	Class string
}

func (m *ClassMarker) Apply(t Theme) {
	if t == ThemeDark {
		m.Class = "dark"
		return
	}
	m.Class = ""
}

// FromRequest is a read-only shortcut for rendering: it reports the
// persisted theme and the matching <html> class.
func FromRequest(r *http.Request) (Theme, string) {
	var m ClassMarker
	s := NewStore(NewCookieKV(nil, r, false), &m)
	return s.Get(), m.Class
}
