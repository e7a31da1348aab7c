package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vnkhanh/e-course-admin/middleware"
	"github.com/vnkhanh/e-course-admin/models"
	"github.com/vnkhanh/e-course-admin/services"
	"github.com/vnkhanh/e-course-admin/utils"
	"github.com/vnkhanh/e-course-admin/ws"
)

// ====== INPUT STRUCTS ======

type CourseFormController struct {
	API            services.SubjectCourseAPI
	Hub            *ws.Hub
	Sessions       *services.FormSessions
	MaxUploadBytes int64
}

type FieldInput struct {
	Field string `json:"field" form:"field" binding:"required"`
	Value string `json:"value" form:"value"`
}

// Giá trị các ô input lúc bấm submit (body không bắt buộc)
type SubmitInput struct {
	Fields map[string]string `json:"fields"`
}

type uploadedFileView struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

type courseFormView struct {
	SessionID          string               `json:"session_id"`
	State              models.FormState     `json:"state"`
	Chips              []models.SubjectChip `json:"subjects"`
	SelectedSubjectIDs []string             `json:"selected_subject_ids"`
	Syllabus           *uploadedFileView    `json:"syllabus"`
	Image              *uploadedFileView    `json:"image"`
}

func newCourseFormView(session *services.FormSession) courseFormView {
	form := session.Form
	return courseFormView{
		SessionID:          session.ID.String(),
		State:              form.State(),
		Chips:              form.Chips(),
		SelectedSubjectIDs: form.SelectedSubjectIDs(),
		Syllabus:           fileView(form, models.SlotSyllabus),
		Image:              fileView(form, models.SlotImage),
	}
}

func fileView(form *services.CourseForm, slot models.FileSlot) *uploadedFileView {
	f, ok := form.File(slot)
	if !ok {
		return nil
	}
	return &uploadedFileView{Filename: f.Filename, ContentType: f.ContentType, Size: f.Size()}
}

// ====== HANDLERS ======

// GET /admin/course
// Mở form mới: tạo session, tải danh sách môn rồi render trang
func (ctl *CourseFormController) MountCourseForm(c *gin.Context) {
	session := ctl.Sessions.Create(func(id uuid.UUID) *services.CourseForm {
		return services.NewCourseForm(ctl.API, ctl.Hub.Notifier(id.String()))
	})
	session.Form.Load(c.Request.Context())

	view := newCourseFormView(session)
	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(http.StatusCreated, view)
	default:
		c.HTML(http.StatusOK, "course_form.html", gin.H{
			"View":        view,
			"SelectedIDs": strings.Join(view.SelectedSubjectIDs, ", "),
		})
	}
}

// GET /admin/course/:session
func (ctl *CourseFormController) GetCourseForm(c *gin.Context) {
	c.JSON(http.StatusOK, newCourseFormView(middleware.CurrentFormSession(c)))
}

// POST /admin/course/:session/fields
func (ctl *CourseFormController) UpdateCourseField(c *gin.Context) {
	var input FieldInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field name is required"})
		return
	}

	field, err := models.ParseField(input.Field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": input.Field})
		return
	}

	session := middleware.CurrentFormSession(c)
	if err := session.Form.UpdateField(field, input.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": input.Field})
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": session.Form.State()})
}

// POST /admin/course/:session/subjects/:subjectID/toggle
func (ctl *CourseFormController) ToggleCourseSubject(c *gin.Context) {
	session := middleware.CurrentFormSession(c)
	selected := session.Form.ToggleSubject(c.Param("subjectID"))

	c.JSON(http.StatusOK, gin.H{
		"selected_subject_ids": selected,
		"subjects":             session.Form.Chips(),
	})
}

// POST /admin/course/:session/files/:slot
// Chỉ giữ file đầu tiên trong part "file"
func (ctl *CourseFormController) SetCourseFile(c *gin.Context) {
	slot, err := models.ParseFileSlot(c.Param("slot"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if ctl.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ctl.MaxUploadBytes+1<<20)
	}
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form", "details": err.Error()})
		return
	}

	headers := form.File["file"]
	if len(headers) > 1 {
		headers = headers[:1]
	}
	files, err := utils.ReadUploadedFiles(headers, ctl.MaxUploadBytes)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, utils.ErrFileTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	session := middleware.CurrentFormSession(c)
	if err := session.Form.SetFile(slot, files); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slot": slot,
		"file": fileView(session.Form, slot),
	})
}

// POST /admin/course/:session/submit
// Kết quả trả về dạng toast, vừa trong response vừa qua websocket
func (ctl *CourseFormController) SubmitCourseForm(c *gin.Context) {
	session := middleware.CurrentFormSession(c)

	if c.Request.ContentLength != 0 {
		var input SubmitInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submit body", "details": err.Error()})
			return
		}
		// Ghi đè các field mà /fields có thể chưa kịp nhận
		if err := session.Form.ApplyFields(input.Fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	toast := session.Form.Submit(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"toast": toast})
}

// DELETE /admin/course/:session
func (ctl *CourseFormController) UnmountCourseForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("session"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}
	if !ctl.Sessions.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Form session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
