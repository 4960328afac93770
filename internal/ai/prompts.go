// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import "fmt"

// Kind identifies one of the site's generator features.
type Kind string

const (
	KindTips     Kind = "tips"
	KindBranding Kind = "branding"
	KindPost     Kind = "post"
)

// Kinds lists every feature kind in display order.
func Kinds() []Kind {
	return []Kind{KindBranding, KindPost, KindTips}
}

// ParseKind converts a URL segment or form value into a Kind.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	if _, ok := promptTemplates[k]; ok {
		return k, true
	}
	return "", false
}

// promptTemplates holds one format string per kind. Each has exactly one
// %s verb where the user's text goes. The model is asked for free-form
// text, never structured output.
var promptTemplates = map[Kind]string{
	KindTips: `Provide 3 actionable tips for improving "%s" soft skill. ` +
		`Focus on practical advice and keep each tip concise and numbered.`,

	KindBranding: `Generate a concise and impactful personal branding statement (2-3 sentences) ` +
		`based on the following specific professional identity description: "%s". ` +
		`Ensure the statement highlights unique value and target audience clearly, ` +
		`without offering multiple options.`,

	KindPost: `Generate a professional, engaging LinkedIn post based on the following details: "%s". ` +
		`The post should be 3-5 paragraphs, include relevant emojis ` +
		`(like 👋, 👇, ✅, 🎓, 💼, 💡, 🧠, 🌐, 🕵️, 🎙️, 🌍, 🚀), ` +
		`and incorporate relevant hashtags. Ensure a clear call to action or engagement prompt.`,
}

// Prompt renders the template bound to kind with userText substituted.
func Prompt(kind Kind, userText string) (string, error) {
	tmpl, ok := promptTemplates[kind]
	if !ok {
		return "", fmt.Errorf("ai: unknown kind %q", kind)
	}
	return fmt.Sprintf(tmpl, userText), nil
}
