package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/client-intake/internal/application"
	"github.com/linskybing/client-intake/internal/domain/audit"
	"github.com/linskybing/client-intake/internal/domain/submission"
	"github.com/linskybing/client-intake/pkg/response"
)

type SubmissionHandler struct {
	svc   *application.SubmissionService
	audit *application.AuditService
}

func NewSubmissionHandler(svc *application.SubmissionService, auditSvc *application.AuditService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, audit: auditSvc}
}

// CreateSubmission godoc
// @Summary Store a questionnaire submission
// @Tags submissions
// @Accept json
// @Produce json
// @Param input body submission.CreateSubmissionInput true "Flattened questionnaire answers"
// @Success 201 {object} submission.Submission
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 500 {object} response.ErrorResponse "Failed to create submission"
// @Router /api/submit [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var input submission.CreateSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input", Details: err.Error()})
		return
	}

	sub, err := h.svc.CreateSubmission(c.Request.Context(), input, requestSource(c, submission.ChannelWeb))
	if err != nil {
		if errors.Is(err, application.ErrMissingRequired) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input", Details: err.Error()})
			return
		}
		log.Printf("[Submission] error creating submission: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create submission", Details: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// ListSubmissions godoc
// @Summary List submissions, newest first
// @Tags submissions
// @Produce json
// @Success 200 {array} submission.Submission
// @Failure 500 {object} response.ErrorResponse "Failed to fetch submissions"
// @Router /api/all [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	subs, err := h.svc.ListSubmissions(c.Request.Context())
	if err != nil {
		log.Printf("[Submission] error fetching submissions: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch submissions"})
		return
	}
	c.JSON(http.StatusOK, subs)
}

// GetSubmission godoc
// @Summary Get one submission
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} submission.Submission
// @Failure 404 {object} response.ErrorResponse "Submission not found"
// @Failure 500 {object} response.ErrorResponse "Failed to fetch submission"
// @Router /api/{id} [get]
func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	sub, err := h.svc.GetSubmission(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Submission not found"})
			return
		}
		log.Printf("[Submission] error fetching submission: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch submission"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// DeleteSubmission godoc
// @Summary Delete one submission
// @Tags submissions
// @Param id path string true "Submission ID"
// @Success 204 "Deleted"
// @Failure 404 {object} response.ErrorResponse "Submission not found"
// @Failure 500 {object} response.ErrorResponse "Failed to delete submission"
// @Router /api/{id} [delete]
func (h *SubmissionHandler) DeleteSubmission(c *gin.Context) {
	id := c.Param("id")
	err := h.svc.DeleteSubmission(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrSubmissionNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Submission not found"})
			return
		}
		log.Printf("[Submission] error deleting submission: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to delete submission"})
		return
	}
	recordAudit(h.audit, c, "", audit.ActionDelete, id, "")
	c.Status(http.StatusNoContent)
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router / [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok", Message: "Backend is running"})
}

func requestSource(c *gin.Context, channel string) submission.Source {
	return submission.Source{
		Channel:   channel,
		UserAgent: c.Request.UserAgent(),
		ClientIP:  c.ClientIP(),
	}
}
