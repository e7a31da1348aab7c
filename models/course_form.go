package models

import (
	"errors"
)

var (
	ErrUnknownField    = errors.New("unknown form field")
	ErrUnknownFileSlot = errors.New("unknown file input")
)

// Field identifies one input of the course form.
type Field int

const (
	FieldName Field = iota
	FieldTitle
	FieldDescription
	FieldDuration
	FieldInstructor
	FieldPrice
	FieldNoOfSubjects
	FieldNoOfSemesters
)

// tên field trên form, cũng là tên part khi submit
var fieldNames = map[Field]string{
	FieldName:          "name",
	FieldTitle:         "title",
	FieldDescription:   "description",
	FieldDuration:      "duration",
	FieldInstructor:    "instructor",
	FieldPrice:         "price",
	FieldNoOfSubjects:  "noOfSubjects",
	FieldNoOfSemesters: "noOfSemesters",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// IsNumeric reports whether the field is backed by a number input.
func (f Field) IsNumeric() bool {
	return f == FieldNoOfSubjects || f == FieldNoOfSemesters
}

func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, ErrUnknownField
}

// FormState holds the scalar inputs of the course form. The two number
// inputs keep the raw text the widget produced ("" when cleared, "2.5",
// "1e3" ...), the backend decides what is valid.
type FormState struct {
	Name          string `json:"name"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	Instructor    string `json:"instructor"`
	Price         string `json:"price"`
	NoOfSubjects  string `json:"noOfSubjects"`
	NoOfSemesters string `json:"noOfSemesters"`
}

// NewFormState trả về state mặc định của form: chuỗi rỗng, hai ô số là "0".
func NewFormState() FormState {
	return FormState{NoOfSubjects: "0", NoOfSemesters: "0"}
}

// Set replaces exactly one field with value, as given.
func (s *FormState) Set(field Field, value string) error {
	switch field {
	case FieldName:
		s.Name = value
	case FieldTitle:
		s.Title = value
	case FieldDescription:
		s.Description = value
	case FieldDuration:
		s.Duration = value
	case FieldInstructor:
		s.Instructor = value
	case FieldPrice:
		s.Price = value
	case FieldNoOfSubjects:
		s.NoOfSubjects = value
	case FieldNoOfSemesters:
		s.NoOfSemesters = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Values returns every field as the string sent on submit, in form order.
func (s FormState) Values() []FieldValue {
	return []FieldValue{
		{FieldName, s.Name},
		{FieldTitle, s.Title},
		{FieldDescription, s.Description},
		{FieldDuration, s.Duration},
		{FieldInstructor, s.Instructor},
		{FieldPrice, s.Price},
		{FieldNoOfSemesters, s.NoOfSemesters},
		{FieldNoOfSubjects, s.NoOfSubjects},
	}
}

type FieldValue struct {
	Field Field
	Value string
}

// FileSlot names one of the two file inputs.
type FileSlot string

const (
	SlotSyllabus FileSlot = "syllabus"
	SlotImage    FileSlot = "image"
)

func ParseFileSlot(name string) (FileSlot, error) {
	switch FileSlot(name) {
	case SlotSyllabus, SlotImage:
		return FileSlot(name), nil
	}
	return "", ErrUnknownFileSlot
}

// UploadedFile: file người dùng chọn, giữ trong RAM tới khi submit
type UploadedFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
}

func (f UploadedFile) Size() int {
	return len(f.Content)
}
