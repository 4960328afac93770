// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Section groups catalog items into the blocks of the home page.
type Section string

const (
	SectionAbout        Section = "about"
	SectionService      Section = "service"
	SectionWorkshop     Section = "workshop"
	SectionTestimonial  Section = "testimonial"
	SectionBlog         Section = "blog"
	SectionConsultation Section = "consultation"
	SectionEvent        Section = "event"
	SectionVideo        Section = "video"
)

// Sections lists every section in page order.
func Sections() []Section {
	return []Section{
		SectionAbout, SectionService, SectionWorkshop, SectionConsultation,
		SectionEvent, SectionVideo, SectionTestimonial, SectionBlog,
	}
}

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	for _, known := range Sections() {
		if s == known {
			return true
		}
	}
	return false
}

// Item is one entry of the static site catalog: a service card, a workshop,
// a testimonial, a blog summary, a video and so on. Not every field is used
// by every section.
type Item struct {
	ID         uuid.UUID `json:"id"`
	Slug       string    `json:"slug"`
	Section    Section   `json:"section"`
	Position   int       `json:"position"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle,omitempty"`
	Body       string    `json:"body,omitempty"` // Markdown
	Tag        string    `json:"tag,omitempty"`
	Author     string    `json:"author,omitempty"`
	Date       string    `json:"date,omitempty"`
	Rating     float64   `json:"rating,omitempty"`
	URL        string    `json:"url,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	ModalTitle string    `json:"modal_title,omitempty"`
	ModalBody  string    `json:"modal_body,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasModal returns true if the item opens an info modal.
func (i *Item) HasModal() bool {
	return i.ModalBody != ""
}

// Stars returns one entry per whole star of the rating, clamped to 0..5,
// for ranging in templates.
func (i *Item) Stars() []struct{} {
	n := int(math.Floor(i.Rating))
	n = max(0, min(n, 5))
	return make([]struct{}, n)
}

// HalfStar returns true if the rating has a fractional part.
func (i *Item) HalfStar() bool {
	return i.Rating > 0 && i.Rating < 5 && i.Rating != math.Floor(i.Rating)
}

// Initials returns the first letter of each word of Title.
func (i *Item) Initials() string {
	var b strings.Builder
	for _, w := range strings.Fields(i.Title) {
		r, _ := utf8.DecodeRuneInString(w)
		b.WriteRune(r)
	}
	return b.String()
}

// EmbedURL returns the privacy-friendly YouTube embed URL for a video item.
// For video items URL holds the YouTube video ID.
func (i *Item) EmbedURL() string {
	if i.Section != SectionVideo || i.URL == "" {
		return ""
	}
	return "https://www.youtube-nocookie.com/embed/" + i.URL
}

// Catalog is the whole site content grouped by section.
type Catalog map[Section][]Item

// Group sorts items into a Catalog. Items keep their relative order.
func Group(items []Item) Catalog {
	c := make(Catalog)
	for _, it := range items {
		c[it.Section] = append(c[it.Section], it)
	}
	return c
}
