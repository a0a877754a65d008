package cron

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/client-intake/internal/application"
)

// AuditCleaner is the part of AuditService the cleanup task needs.
type AuditCleaner interface {
	CleanupOldLogs(ctx context.Context, retention time.Duration) (int64, error)
}

var _ AuditCleaner = (*application.AuditService)(nil)

// StartCleanupTask prunes audit entries older than retention once on start
// and then every interval until ctx is done.
func StartCleanupTask(ctx context.Context, cleaner AuditCleaner, retention, interval time.Duration) {
	go func() {
		log.Printf("[Cron] audit cleanup started (retention: %s, every %s)", retention, interval)
		runCleanup(ctx, cleaner, retention)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Println("[Cron] audit cleanup stopped")
				return
			case <-ticker.C:
				runCleanup(ctx, cleaner, retention)
			}
		}
	}()
}

func runCleanup(ctx context.Context, cleaner AuditCleaner, retention time.Duration) {
	n, err := cleaner.CleanupOldLogs(ctx, retention)
	if err != nil {
		log.Printf("[Cron] failed to cleanup old audit logs: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[Cron] removed %d audit entries", n)
	}
}
