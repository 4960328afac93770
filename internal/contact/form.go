// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package contact

// Notice types shown above the form.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// FormState is the contact form as the visitor last saw it.
type FormState struct {
	Fields     Submission `json:"fields"`
	Notice     string     `json:"notice,omitempty"`
	NoticeType string     `json:"notice_type,omitempty"`
}

// Succeeded clears the fields and records the success notice.
func (f *FormState) Succeeded() {
	f.Fields = Submission{}
	f.Notice = SuccessMessage
	f.NoticeType = NoticeSuccess
}

// Failed keeps the fields so the visitor can resubmit.
func (f *FormState) Failed(msg string) {
	f.Notice = msg
	f.NoticeType = NoticeError
}
