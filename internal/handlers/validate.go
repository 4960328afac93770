package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"skillsite/internal/contact"
)

// Validation limits for visitor input.
const (
	maxNameLen    = 200
	maxEmailLen   = 254
	maxSubjectLen = 300
	maxMessageLen = 5_000
)

// validateContact checks the contact form and returns the first error found.
// Fields are expected to be trimmed already.
func validateContact(s contact.Submission) string {
	if s.Name == "" {
		return "Please enter your name."
	}
	if utf8.RuneCountInString(s.Name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if s.Email == "" {
		return "Please enter your email address."
	}
	if utf8.RuneCountInString(s.Email) > maxEmailLen || !validEmail(s.Email) {
		return "Please enter a valid email address."
	}
	if utf8.RuneCountInString(s.Subject) > maxSubjectLen {
		return "Subject is too long (max 300 characters)."
	}
	if s.Message == "" {
		return "Please enter a message."
	}
	if utf8.RuneCountInString(s.Message) > maxMessageLen {
		return "Message is too long (max 5,000 characters)."
	}
	return ""
}

// validEmail accepts a bare address with a dotted domain, the shape an
// <input type="email"> lets through.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}
