package utils

import (
	"context"
	"log"
	"time"

	"github.com/vnkhanh/e-course-admin/services"
)

// CleanupIdleSessions drops form sessions whose page went away without
// unmounting cleanly.
func CleanupIdleSessions(sessions *services.FormSessions) {
	if removed := sessions.Sweep(); removed > 0 {
		log.Printf("Removed %d idle form sessions", removed)
	}
}

// Chạy dọn session định kỳ tới khi ctx kết thúc
func StartCleanupJob(ctx context.Context, sessions *services.FormSessions, interval time.Duration) {
	if interval <= 0 {
		log.Println("Session cleanup job disabled")
		return
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CleanupIdleSessions(sessions)
			}
		}
	}()

	log.Printf("Session cleanup job started (every %s)", interval)
}
