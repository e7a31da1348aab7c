package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-course-admin/config"
	"github.com/vnkhanh/e-course-admin/controllers"
	"github.com/vnkhanh/e-course-admin/routes"
	"github.com/vnkhanh/e-course-admin/services"
	"github.com/vnkhanh/e-course-admin/utils"
	"github.com/vnkhanh/e-course-admin/ws"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := services.NewFormSessions(cfg.SessionIdleTimeout)
	utils.StartCleanupJob(ctx, sessions, cfg.SessionSweepInterval)

	ctl := &controllers.CourseFormController{
		API:            services.NewCourseAPI(cfg.APIBaseURL, cfg.APITimeout),
		Hub:            ws.H,
		Sessions:       sessions,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}

	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r = routes.SetupRouter(r, ctl)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Course admin panel running at port %s (backend %s)", cfg.Port, cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
