package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vnkhanh/e-course-admin/models"
	"github.com/vnkhanh/e-course-admin/services"
)

type okAPI struct{}

func (okAPI) ListSubjects(ctx context.Context) (models.SubjectList, error) {
	return models.SubjectList{Success: true}, nil
}

func (okAPI) CreateCourse(ctx context.Context, p services.CoursePayload) (models.CourseCreateResponse, error) {
	return models.CourseCreateResponse{}, nil
}

func TestCourseFormWebSocketDeliversToasts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	sessions := services.NewFormSessions(time.Hour)
	session := sessions.Create(func(id uuid.UUID) *services.CourseForm {
		return services.NewCourseForm(okAPI{}, hub.Notifier(id.String()))
	})

	r := gin.New()
	r.GET("/ws/course/:session", HandleCourseFormWebSocket(hub, sessions))
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/course/" + session.ID.String()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	var hello map[string]string
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&hello); err != nil || hello["type"] != "connected" {
		t.Fatalf("expected connected message, got %v %v", hello, err)
	}

	session.Form.Submit(context.Background())

	var toast models.Toast
	if err := conn.ReadJSON(&toast); err != nil {
		t.Fatalf("read toast: %v", err)
	}
	if toast.Type != "toast" || toast.Kind != models.ToastSuccess || toast.Message != models.DefaultCourseCreatedMessage {
		t.Fatalf("unexpected toast %+v", toast)
	}
	if stats := hub.GetStats(); stats.Sessions != 1 || stats.Connections != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Connections(session.ID.String()) != 0 {
		if time.Now().After(deadline) {
			t.Fatal("connection not unregistered after socket closed")
		}
		time.Sleep(10 * time.Millisecond)
	}
	if _, err := sessions.Get(session.ID); err != nil {
		t.Fatalf("session must survive a dropped socket: %v", err)
	}

	// trang kết nối lại vẫn nhận được toast của cùng session
	conn, _, err = websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("redial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&hello); err != nil || hello["type"] != "connected" {
		t.Fatalf("expected connected message after reconnect, got %v %v", hello, err)
	}
	session.Form.Submit(context.Background())
	if err := conn.ReadJSON(&toast); err != nil || toast.Kind != models.ToastSuccess {
		t.Fatalf("expected toast after reconnect, got %+v %v", toast, err)
	}
}

func TestCourseFormWebSocketUnknownSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/course/:session", HandleCourseFormWebSocket(NewHub(), services.NewFormSessions(time.Hour)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ws/course/"+uuid.NewString(), nil))
	if w.Code != 404 {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
