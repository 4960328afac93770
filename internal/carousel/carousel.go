// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package carousel rotates the hero slides on a fixed period.
package carousel

import (
	"context"
	"sync"
	"time"
)

// DefaultPeriod is the time between two slides.
const DefaultPeriod = 3 * time.Second

// Slide is one hero headline.
type Slide struct {
	Title    string
	Subtitle string
}

// DefaultSlides are the hero headlines shown when no others are configured.
var DefaultSlides = []Slide{
	{"Master Communication, Transform Your Career", "Develop compelling verbal and non-verbal skills for impactful interactions."},
	{"Lead with Confidence, Inspire Your Team", "Cultivate authentic leadership qualities that drive motivation and success."},
	{"Boost Emotional Intelligence, Build Stronger Relationships", "Understand and manage emotions to foster empathy and effective collaboration."},
	{"Navigate Conflict Effectively, Achieve Win-Win Outcomes", "Learn strategies to resolve disagreements constructively and strengthen bonds."},
	{"Unlock Your Personal Brand, Stand Out in Your Industry", "Define and articulate your unique value proposition to elevate your professional presence."},
	{"Enhance Productivity, Achieve Your Professional Goals", "Acquire time management and organizational skills to maximize your efficiency."},
}

// Driver owns the current slide index. It is safe for concurrent use.
type Driver struct {
	mu     sync.RWMutex
	slides []Slide
	index  int
	period time.Duration

	stop     chan struct{}
	stopOnce sync.Once
}

// New creates a driver starting at slide 0. An empty slides list uses
// DefaultSlides and a non-positive period uses DefaultPeriod.
func New(slides []Slide, period time.Duration) *Driver {
	if len(slides) == 0 {
		slides = DefaultSlides
	}
	if period <= 0 {
		period = DefaultPeriod
	}
	cp := make([]Slide, len(slides))
	copy(cp, slides)
	return &Driver{slides: cp, period: period, stop: make(chan struct{})}
}

// Tick advances to the next slide, wrapping after the last one.
func (d *Driver) Tick() {
	d.mu.Lock()
	d.index = (d.index + 1) % len(d.slides)
	d.mu.Unlock()
}

// Current returns the index and content of the visible slide.
func (d *Driver) Current() (int, Slide) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index, d.slides[d.index]
}

func (d *Driver) Len() int { return len(d.slides) }

func (d *Driver) Period() time.Duration { return d.period }

// Run ticks every period until ctx is done or Stop is called. It blocks,
// so callers start it in its own goroutine.
func (d *Driver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stop:
			return
		case <-ticker.C:
			d.Tick()
		}
	}
}

// Stop ends Run. Calling it more than once is a no-op.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() { close(d.stop) })
}
