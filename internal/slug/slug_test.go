// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slug

import "testing"

// TestGenerate covers the kinds of titles the site catalog carries.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "Life Coaching", want: "life-coaching"},
		{name: "colon", input: "Webinar: Mastering Virtual Communication", want: "webinar-mastering-virtual-communication"},
		{name: "slash", input: "Life Above Personal Branding/Linkedin Mastery", want: "life-above-personal-brandinglinkedin-mastery"},
		{name: "question mark", input: "What is an ATS-Friendly Resume?", want: "what-is-an-ats-friendly-resume"},
		{name: "dots", input: "Rtr. Vivek Trivedi", want: "rtr-vivek-trivedi"},
		{name: "all caps", input: "SWATI SWAMY", want: "swati-swamy"},
		{name: "surrounding spaces", input: "  Resume Review  ", want: "resume-review"},
		{name: "collapse hyphens", input: "In-Person -- Workshop", want: "in-person-workshop"},
		{name: "only symbols", input: "!!!", want: ""},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnique(t *testing.T) {
	taken := map[string]bool{}

	if got := Unique("resume-writing", taken); got != "resume-writing" {
		t.Errorf("first: got %q", got)
	}
	if got := Unique("resume-writing", taken); got != "resume-writing-2" {
		t.Errorf("second: got %q", got)
	}
	if got := Unique("resume-writing", taken); got != "resume-writing-3" {
		t.Errorf("third: got %q", got)
	}
	if got := Unique("", taken); got != "item" {
		t.Errorf("empty base: got %q", got)
	}
	if !taken["resume-writing-3"] || !taken["item"] {
		t.Errorf("taken not updated: %v", taken)
	}
}
