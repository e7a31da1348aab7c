package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/vnkhanh/e-course-admin/models"
)

const (
	subjectsPath = "/api/subject/create"
	coursePath   = "/api/course"
)

// ErrAPIStatus is returned when the backend answers outside the 2xx range.
var ErrAPIStatus = errors.New("unexpected status from course api")

// SubjectCourseAPI is the part of the backend the course form talks to.
type SubjectCourseAPI interface {
	ListSubjects(ctx context.Context) (models.SubjectList, error)
	CreateCourse(ctx context.Context, payload CoursePayload) (models.CourseCreateResponse, error)
}

// CoursePayload is everything sent by one submit.
type CoursePayload struct {
	State      models.FormState
	SubjectIDs []string
	Syllabus   *models.UploadedFile
	Image      *models.UploadedFile
}

type CourseAPI struct {
	baseURL string
	client  *http.Client
}

func NewCourseAPI(baseURL string, timeout time.Duration) *CourseAPI {
	return &CourseAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// ListSubjects fetches the selectable subjects. The success flag is left for
// the caller to interpret.
func (a *CourseAPI) ListSubjects(ctx context.Context) (models.SubjectList, error) {
	var list models.SubjectList

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+subjectsPath, nil)
	if err != nil {
		return list, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return list, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return list, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return list, fmt.Errorf("%w (%d): %s", ErrAPIStatus, resp.StatusCode, string(respData))
	}

	if err := json.Unmarshal(respData, &list); err != nil {
		return list, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return list, nil
}

// CreateCourse posts the course as multipart/form-data. Any 2xx answer is a
// success; a body that is not JSON yields an empty response.
func (a *CourseAPI) CreateCourse(ctx context.Context, payload CoursePayload) (models.CourseCreateResponse, error) {
	var result models.CourseCreateResponse

	body, contentType, err := EncodeCoursePayload(payload)
	if err != nil {
		return result, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+coursePath, body)
	if err != nil {
		return result, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return result, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, fmt.Errorf("%w (%d): %s", ErrAPIStatus, resp.StatusCode, string(respData))
	}

	if err := json.Unmarshal(respData, &result); err != nil {
		return models.CourseCreateResponse{}, nil
	}
	return result, nil
}

// EncodeCoursePayload: body multipart cho submit, file nào không chọn thì bỏ qua
func EncodeCoursePayload(payload CoursePayload) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, fv := range payload.State.Values() {
		if err := writer.WriteField(fv.Field.String(), fv.Value); err != nil {
			return nil, "", fmt.Errorf("failed to write %s field: %w", fv.Field, err)
		}
	}

	ids := payload.SubjectIDs
	if ids == nil {
		ids = []string{}
	}
	subjects, err := json.Marshal(ids)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode subjects: %w", err)
	}
	if err := writer.WriteField("subjects", string(subjects)); err != nil {
		return nil, "", fmt.Errorf("failed to write subjects field: %w", err)
	}

	if payload.Syllabus != nil {
		if err := writeFilePart(writer, string(models.SlotSyllabus), *payload.Syllabus); err != nil {
			return nil, "", err
		}
	}
	if payload.Image != nil {
		if err := writeFilePart(writer, string(models.SlotImage), *payload.Image); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(writer *multipart.Writer, fieldName string, file models.UploadedFile) error {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(fieldName), quoteEscaper.Replace(file.Filename)))
	h.Set("Content-Type", contentType)

	fw, err := writer.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create form file %s: %w", fieldName, err)
	}
	if _, err := fw.Write(file.Content); err != nil {
		return fmt.Errorf("failed to copy %s content: %w", fieldName, err)
	}
	return nil
}
