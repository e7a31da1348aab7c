package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/vnkhanh/e-course-admin/models"
)

// Notifier hiện toast cho người đang mở form
type Notifier interface {
	Notify(toast models.Toast)
}

type NotifierFunc func(toast models.Toast)

func (f NotifierFunc) Notify(toast models.Toast) { f(toast) }

// CourseForm is the state behind one course creation page: the scalar
// inputs, the subjects offered by the backend, the selected subject IDs and
// the two optional files.
type CourseForm struct {
	api      SubjectCourseAPI
	notifier Notifier

	mu       sync.RWMutex
	state    models.FormState
	subjects []models.Subject
	selected []string
	syllabus *models.UploadedFile
	image    *models.UploadedFile
}

func NewCourseForm(api SubjectCourseAPI, notifier Notifier) *CourseForm {
	if notifier == nil {
		notifier = NotifierFunc(func(models.Toast) {})
	}
	return &CourseForm{
		api:      api,
		notifier: notifier,
		state:    models.NewFormState(),
		subjects: []models.Subject{},
		selected: []string{},
	}
}

// Load fetches the selectable subjects. Failures are only logged and leave
// the current list untouched.
func (f *CourseForm) Load(ctx context.Context) {
	list, err := f.api.ListSubjects(ctx)
	if err != nil {
		log.Printf("Error fetching subjects: %v", err)
		return
	}
	if !list.Success {
		log.Printf("Error fetching subjects: %s", list.Message)
		return
	}

	subjects := make([]models.Subject, len(list.Subjects))
	copy(subjects, list.Subjects)

	f.mu.Lock()
	f.subjects = subjects
	f.mu.Unlock()
}

func (f *CourseForm) UpdateField(field models.Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Set(field, value)
}

func (f *CourseForm) SetName(v string)        { f.setString(models.FieldName, v) }
func (f *CourseForm) SetTitle(v string)       { f.setString(models.FieldTitle, v) }
func (f *CourseForm) SetDescription(v string) { f.setString(models.FieldDescription, v) }
func (f *CourseForm) SetDuration(v string)    { f.setString(models.FieldDuration, v) }
func (f *CourseForm) SetInstructor(v string)  { f.setString(models.FieldInstructor, v) }
func (f *CourseForm) SetPrice(v string)       { f.setString(models.FieldPrice, v) }

func (f *CourseForm) SetNoOfSubjects(n int) {
	f.setString(models.FieldNoOfSubjects, strconv.Itoa(n))
}

func (f *CourseForm) SetNoOfSemesters(n int) {
	f.setString(models.FieldNoOfSemesters, strconv.Itoa(n))
}

func (f *CourseForm) setString(field models.Field, v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = f.state.Set(field, v) // known fields never fail
}

// ApplyFields writes several inputs at once, as the page sends them with a
// submit. Unknown names are rejected before anything is written.
func (f *CourseForm) ApplyFields(values map[string]string) error {
	fields := make(map[models.Field]string, len(values))
	for name, v := range values {
		field, err := models.ParseField(name)
		if err != nil {
			return fmt.Errorf("%w: %s", err, name)
		}
		fields[field] = v
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for field, v := range fields {
		_ = f.state.Set(field, v)
	}
	return nil
}

// Bỏ chọn nếu đã chọn, ngược lại thêm vào cuối
func (f *CourseForm) ToggleSubject(id string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := make([]string, 0, len(f.selected)+1)
	removed := false
	for _, s := range f.selected {
		if !removed && s == id {
			removed = true
			continue
		}
		next = append(next, s)
	}
	if !removed {
		next = append(next, id)
	}
	f.selected = next

	out := make([]string, len(next))
	copy(out, next)
	return out
}

// SetFile keeps the first of files for slot. An empty list clears the slot,
// which is what a cancelled file dialog produces.
func (f *CourseForm) SetFile(slot models.FileSlot, files []models.UploadedFile) error {
	var file *models.UploadedFile
	if len(files) > 0 {
		first := files[0]
		file = &first
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	switch slot {
	case models.SlotSyllabus:
		f.syllabus = file
	case models.SlotImage:
		f.image = file
	default:
		return models.ErrUnknownFileSlot
	}
	return nil
}

// Submit sends the current form to the backend and notifies the outcome.
// Nothing is reset afterwards and concurrent submits are not prevented.
// Any 2xx answer counts as success, whatever the body says.
func (f *CourseForm) Submit(ctx context.Context) models.Toast {
	payload := f.payload()

	resp, err := f.api.CreateCourse(ctx, payload)
	if err != nil {
		log.Printf("Error submitting form: %v", err)
		toast := models.NewToast(models.ToastError, models.CourseCreateFailedMessage)
		f.notifier.Notify(toast)
		return toast
	}

	message := resp.Message
	if message == "" {
		message = models.DefaultCourseCreatedMessage
	}
	toast := models.NewToast(models.ToastSuccess, message)
	f.notifier.Notify(toast)
	return toast
}

func (f *CourseForm) payload() CoursePayload {
	f.mu.RLock()
	defer f.mu.RUnlock()

	ids := make([]string, len(f.selected))
	copy(ids, f.selected)
	return CoursePayload{
		State:      f.state,
		SubjectIDs: ids,
		Syllabus:   f.syllabus,
		Image:      f.image,
	}
}

func (f *CourseForm) State() models.FormState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

func (f *CourseForm) Subjects() []models.Subject {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]models.Subject, len(f.subjects))
	copy(out, f.subjects)
	return out
}

func (f *CourseForm) SelectedSubjectIDs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.selected))
	copy(out, f.selected)
	return out
}

func (f *CourseForm) Chips() []models.SubjectChip {
	f.mu.RLock()
	defer f.mu.RUnlock()

	selected := make(map[string]bool, len(f.selected))
	for _, id := range f.selected {
		selected[id] = true
	}
	chips := make([]models.SubjectChip, 0, len(f.subjects))
	for _, s := range f.subjects {
		chips = append(chips, models.NewSubjectChip(s, selected[s.ID]))
	}
	return chips
}

func (f *CourseForm) File(slot models.FileSlot) (models.UploadedFile, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var file *models.UploadedFile
	switch slot {
	case models.SlotSyllabus:
		file = f.syllabus
	case models.SlotImage:
		file = f.image
	}
	if file == nil {
		return models.UploadedFile{}, false
	}
	return *file, true
}
