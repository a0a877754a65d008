package application

import (
	"github.com/linskybing/client-intake/internal/config"
	"github.com/linskybing/client-intake/internal/repository"
)

type Services struct {
	Submission *SubmissionService
	Admin      *AdminService
	Wizard     *WizardService
	Export     *ExportService
	Audit      *AuditService
}

// New wires the services. store may be nil when archiving is not configured.
func New(repos *repository.Repos, store ObjectStore) *Services {
	submissions := NewSubmissionService(repos)
	return &Services{
		Submission: submissions,
		Admin:      NewAdminService(config.AdminUsername, config.AdminPasswordHash, config.AdminTokenTTL),
		Wizard:     NewWizardService(repos, submissions),
		Export:     NewExportService(repos, store),
		Audit:      NewAuditService(repos),
	}
}
