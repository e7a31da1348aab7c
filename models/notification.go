package models

import "time"

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

const (
	DefaultCourseCreatedMessage = "Course added successfully"
	CourseCreateFailedMessage   = "Error adding course"
)

// Toast is a transient notification shown on the form page.
type Toast struct {
	Type      string    `json:"type"` // always "toast" on the websocket
	Kind      ToastKind `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewToast(kind ToastKind, message string) Toast {
	return Toast{
		Type:      "toast",
		Kind:      kind,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

// CourseCreateResponse is what the caller reads back from the course endpoint.
type CourseCreateResponse struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}
