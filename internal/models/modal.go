// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ModalKind is which overlay is open. Modals are never persisted.
type ModalKind string

const (
	ModalNone         ModalKind = ""
	ModalInfo         ModalKind = "info"
	ModalConsultation ModalKind = "consultation"
)

// ConsultationText is the body of the consultation booking modal.
const ConsultationText = "Ready to take the first step towards unlocking your full potential? " +
	"Book a complimentary 30-minute consultation with Neeraj Kumar to discuss your goals " +
	"and how our tailored programs can help."

// Modal is the overlay shown on top of the page.
type Modal struct {
	Kind  ModalKind
	Title string
	Body  string
}

// Visible returns true if a modal is open.
func (m Modal) Visible() bool {
	return m.Kind != ModalNone
}

// InfoModal builds the info overlay of an item.
func InfoModal(it *Item) Modal {
	title := it.ModalTitle
	if title == "" {
		title = it.Title
	}
	return Modal{Kind: ModalInfo, Title: title, Body: it.ModalBody}
}

// ConsultationModal builds the consultation booking overlay.
func ConsultationModal() Modal {
	return Modal{Kind: ModalConsultation, Title: "Schedule Your Free Consultation!", Body: ConsultationText}
}
