// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package features holds the per-visitor state of the three AI generator
// features and the runner that moves a feature through its request cycle.
package features

import (
	"strings"

	"skillsite/internal/ai"
)

// Status is the lifecycle position of a single feature.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusValidating Status = "validating"
	StatusRequesting Status = "requesting"
)

// State is what one feature shows to the visitor. Output and Err are never
// both set.
type State struct {
	Input   string       `json:"input"`
	Output  string       `json:"output,omitempty"`
	Err     string       `json:"error,omitempty"`
	ErrKind ai.ErrorKind `json:"error_kind,omitempty"`
	Status  Status       `json:"status"`
}

// Lines splits the output for line-by-line display. Blank lines are dropped.
func (s State) Lines() []string {
	var out []string
	for _, l := range strings.Split(s.Output, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Board holds one independent State per feature kind.
type Board struct {
	Tips     State `json:"tips"`
	Branding State `json:"branding"`
	Post     State `json:"post"`
}

// Get returns a pointer to the state of kind, or nil for an unknown kind.
func (b *Board) Get(kind ai.Kind) *State {
	switch kind {
	case ai.KindTips:
		return &b.Tips
	case ai.KindBranding:
		return &b.Branding
	case ai.KindPost:
		return &b.Post
	default:
		return nil
	}
}

// Messages are the visitor-facing texts for each failure kind.
type Messages struct {
	Empty     string
	TooLong   string
	Malformed string
	HTTP      string
}

// tooLongMessage is shared by all features; the cap is the same for each.
const tooLongMessage = "Your text is too long (max 4,000 characters)."

// BusyMessage is shown when the same feature is triggered again while a
// request is still outstanding.
const BusyMessage = "A request is already in progress. Please wait."

var messages = map[ai.Kind]Messages{
	ai.KindTips: {
		Empty:     "Please enter a soft skill.",
		TooLong:   tooLongMessage,
		Malformed: "Could not generate tips. Please try again.",
		HTTP:      "Failed to fetch tips. Please check your connection or try again.",
	},
	ai.KindBranding: {
		Empty:     "Please describe your professional identity with specific details.",
		TooLong:   tooLongMessage,
		Malformed: "Could not generate a branding statement. Please try again with more specific details.",
		HTTP:      "Failed to fetch branding statement. Please check your connection or try again.",
	},
	ai.KindPost: {
		Empty:     "Please provide details for your LinkedIn post (topic, key points, purpose).",
		TooLong:   tooLongMessage,
		Malformed: "Could not generate LinkedIn post. Please try again.",
		HTTP:      "Failed to fetch LinkedIn post. Please check your connection or try again.",
	},
}

// MessagesFor returns the message set of kind.
func MessagesFor(kind ai.Kind) Messages {
	return messages[kind]
}

// Message maps an error kind to the text of the given feature.
func (m Messages) Message(k ai.ErrorKind) string {
	switch k {
	case ai.ErrorKindNone:
		return ""
	case ai.ErrorKindEmptyInput:
		return m.Empty
	case ai.ErrorKindInputTooLong:
		return m.TooLong
	case ai.ErrorKindMalformedResponse:
		return m.Malformed
	default:
		return m.HTTP
	}
}

// Meta describes how a feature is presented on the page.
type Meta struct {
	Kind        ai.Kind
	Heading     string
	Label       string
	Placeholder string
	Button      string
	Loading     string
	Result      string
	Multiline   bool
}

var metas = map[ai.Kind]Meta{
	ai.KindTips: {
		Kind:        ai.KindTips,
		Heading:     "Get Instant Soft Skill Tips ✨",
		Label:       "Which soft skill are you interested in?",
		Placeholder: "e.g., Communication, Leadership, Conflict Resolution",
		Button:      "Get Tips ✨",
		Loading:     "Generating Tips...",
		Result:      "Your Personalized Soft Skill Tips:",
	},
	ai.KindBranding: {
		Kind:        ai.KindBranding,
		Heading:     "Generate Your Personal Branding Statement ✨",
		Label:       "Describe your unique value, expertise, and target audience in detail:",
		Placeholder: "Example: I'm a leadership coach who empowers emerging tech managers to build high-performing, agile teams, leading to increased project success rates and team morale.",
		Result:      "Your Personal Branding Statement:",
		Button:      "Craft My Statement ✨",
		Loading:     "Generating Statement...",
		Multiline:   true,
	},
	ai.KindPost: {
		Kind:        ai.KindPost,
		Heading:     "Generate LinkedIn Post ✍️",
		Label:       "Describe your post (topic, key points, call to action):",
		Placeholder: "Example: A post about the importance of active listening in leadership, encouraging comments on personal experiences.",
		Result:      "Your LinkedIn Post:",
		Button:      "Generate Post ✍️",
		Loading:     "Generating Post...",
		Multiline:   true,
	},
}

// MetaFor returns the presentation metadata of kind.
func MetaFor(kind ai.Kind) Meta {
	return metas[kind]
}
