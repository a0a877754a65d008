package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/client-intake/internal/application"
)

type Handlers struct {
	Submission *SubmissionHandler
	Wizard     *WizardHandler
	Admin      *AdminHandler
	Audit      *AuditHandler
	Feed       gin.HandlerFunc
	Router     *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		Submission: NewSubmissionHandler(svc.Submission, svc.Audit),
		Wizard:     NewWizardHandler(svc.Wizard),
		Admin:      NewAdminHandler(svc.Admin, svc.Export, svc.Audit),
		Audit:      NewAuditHandler(svc.Audit),
		Feed:       SubmissionsFeed(svc.Submission),
		Router:     router,
	}
}
