package application

import (
	"context"
	"log"
	"time"

	"github.com/linskybing/client-intake/internal/domain/audit"
	"github.com/linskybing/client-intake/internal/repository"
)

const defaultAuditLimit = 100

type AuditService struct {
	Repos *repository.Repos
	now   func() time.Time
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
		now:   time.Now,
	}
}

// Record stores entry. Failures are logged, not returned.
func (s *AuditService) Record(ctx context.Context, entry audit.AuditLog) {
	if s.Repos == nil || s.Repos.Audit == nil {
		return
	}
	if err := s.Repos.Audit.CreateAuditLog(ctx, &entry); err != nil {
		log.Printf("[Audit] failed to record %s by %q: %v", entry.Action, entry.Actor, err)
	}
}

func (s *AuditService) QueryAuditLogs(ctx context.Context, params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	if params.Limit <= 0 {
		params.Limit = defaultAuditLimit
	}
	logs, err := s.Repos.Audit.GetAuditLogs(ctx, params)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}
	return logs, nil
}

// CleanupOldLogs removes entries older than retention.
func (s *AuditService) CleanupOldLogs(ctx context.Context, retention time.Duration) (int64, error) {
	return s.Repos.Audit.DeleteOldAuditLogs(ctx, s.now().Add(-retention))
}
