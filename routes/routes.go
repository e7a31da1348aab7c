package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/e-course-admin/controllers"
	"github.com/vnkhanh/e-course-admin/middleware"
	"github.com/vnkhanh/e-course-admin/templates"
	"github.com/vnkhanh/e-course-admin/ws"
)

func SetupRouter(r *gin.Engine, ctl *controllers.CourseFormController) *gin.Engine {
	r.SetHTMLTemplate(templates.Pages)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck(ctl.Hub, ctl.Sessions))

	admin := r.Group("/admin")
	{
		admin.GET("/course", ctl.MountCourseForm)
		admin.DELETE("/course/:session", ctl.UnmountCourseForm)

		form := admin.Group("/course/:session", middleware.FormSessionMiddleware(ctl.Sessions))
		form.GET("", ctl.GetCourseForm)
		form.POST("/fields", ctl.UpdateCourseField)
		form.POST("/subjects/:subjectID/toggle", ctl.ToggleCourseSubject)
		form.POST("/files/:slot", ctl.SetCourseFile)
		form.POST("/submit", ctl.SubmitCourseForm)
	}

	r.GET("/ws/course/:session", ws.HandleCourseFormWebSocket(ctl.Hub, ctl.Sessions))

	return r
}
