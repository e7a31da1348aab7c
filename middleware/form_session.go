package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vnkhanh/e-course-admin/services"
)

const FormSessionKey = "form_session"

// FormSessionMiddleware resolves the :session path parameter and stores the
// session in the context for the controllers.
func FormSessionMiddleware(sessions *services.FormSessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("session"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
			c.Abort()
			return
		}

		session, err := sessions.Get(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Form session not found"})
			c.Abort()
			return
		}

		c.Set(FormSessionKey, session)
		c.Next()
	}
}

func CurrentFormSession(c *gin.Context) *services.FormSession {
	return c.MustGet(FormSessionKey).(*services.FormSession)
}
