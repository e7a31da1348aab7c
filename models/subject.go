package models

import "github.com/gosimple/slug"

// Subject as listed by the backend. The identifier is opaque.
type Subject struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Response của API danh sách môn học
type SubjectList struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Subjects []Subject `json:"subjects"`
}

// SubjectChip is one selectable subject as rendered on the page.
type SubjectChip struct {
	Subject
	Selected bool   `json:"selected"`
	DomID    string `json:"dom_id"`
}

// NewSubjectChip builds the chip for s. The DOM id carries the subject ID so
// two subjects with the same name never collide.
func NewSubjectChip(s Subject, selected bool) SubjectChip {
	domID := slug.Make(s.Name + " " + s.ID)
	if domID == "" {
		domID = slug.Make(s.ID)
	}
	return SubjectChip{
		Subject:  s,
		Selected: selected,
		DomID:    "subject-" + domID,
	}
}
