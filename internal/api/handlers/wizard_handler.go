package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/client-intake/internal/application"
	"github.com/linskybing/client-intake/internal/domain/questionnaire"
	"github.com/linskybing/client-intake/internal/domain/submission"
	"github.com/linskybing/client-intake/internal/repository"
	"github.com/linskybing/client-intake/pkg/response"
)

type WizardHandler struct {
	svc *application.WizardService
}

func NewWizardHandler(svc *application.WizardService) *WizardHandler {
	return &WizardHandler{svc: svc}
}

type ToggleInput struct {
	Field string `json:"field" binding:"required" example:"services"`
	Value string `json:"value" binding:"required" example:"Video Editing"`
}

// ValidationResponse is returned when a step blocks navigation.
type ValidationResponse struct {
	Error   string                 `json:"error"`
	Details string                 `json:"details"`
	View    application.WizardView `json:"wizard"`
}

// StartDraft godoc
// @Summary Start a wizard session
// @Tags wizard
// @Produce json
// @Success 201 {object} application.WizardView
// @Failure 500 {object} response.ErrorResponse
// @Router /api/wizard [post]
func (h *WizardHandler) StartDraft(c *gin.Context) {
	view, err := h.svc.StartDraft(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetDraft godoc
// @Summary Get the current state of a wizard session
// @Tags wizard
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} application.WizardView
// @Failure 404 {object} response.ErrorResponse "Draft not found"
// @Router /api/wizard/{id} [get]
func (h *WizardHandler) GetDraft(c *gin.Context) {
	view, err := h.svc.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// PatchForm godoc
// @Summary Apply a JSON Patch (RFC 6902) to the session answers
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} application.WizardView
// @Failure 400 {object} response.ErrorResponse "Invalid patch"
// @Failure 404 {object} response.ErrorResponse "Draft not found"
// @Router /api/wizard/{id} [patch]
func (h *WizardHandler) PatchForm(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input", Details: err.Error()})
		return
	}
	view, err := h.svc.PatchForm(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleOption godoc
// @Summary Toggle one option of a multi-select field
// @Tags wizard
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param input body ToggleInput true "Field and option"
// @Success 200 {object} application.WizardView
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Draft not found"
// @Router /api/wizard/{id}/toggle [post]
func (h *WizardHandler) ToggleOption(c *gin.Context) {
	var input ToggleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input", Details: err.Error()})
		return
	}
	view, err := h.svc.ToggleOption(c.Request.Context(), c.Param("id"), input.Field, input.Value)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Next godoc
// @Summary Advance to the next visible step
// @Tags wizard
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} application.WizardView
// @Failure 422 {object} ValidationResponse "Step is incomplete"
// @Failure 404 {object} response.ErrorResponse "Draft not found"
// @Router /api/wizard/{id}/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	view, err := h.svc.Next(c.Request.Context(), c.Param("id"))
	if err != nil {
		var verr *questionnaire.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, ValidationResponse{Error: verr.Title, Details: verr.Description, View: view})
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Back godoc
// @Summary Go back to the previous visible step
// @Tags wizard
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} application.WizardView
// @Failure 404 {object} response.ErrorResponse "Draft not found"
// @Router /api/wizard/{id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	view, err := h.svc.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit godoc
// @Summary Submit a finished wizard session
// @Tags wizard
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} submission.Submission
// @Failure 404 {object} response.ErrorResponse "Draft not found"
// @Failure 409 {object} response.ErrorResponse "Not on the final step"
// @Failure 422 {object} response.ErrorResponse "Step is incomplete"
// @Failure 500 {object} response.ErrorResponse "Failed to create submission"
// @Router /api/wizard/{id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	sub, err := h.svc.Submit(c.Request.Context(), c.Param("id"), requestSource(c, submission.ChannelWizard))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *WizardHandler) fail(c *gin.Context, err error) {
	var (
		verr *questionnaire.ValidationError
		serr *questionnaire.SubmitError
	)
	switch {
	case errors.Is(err, repository.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Draft not found"})
	case errors.Is(err, application.ErrInvalidPatch),
		errors.Is(err, questionnaire.ErrUnknownField),
		errors.Is(err, questionnaire.ErrNotMultiSelect):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input", Details: err.Error()})
	case errors.Is(err, questionnaire.ErrNotFinalStep), errors.Is(err, questionnaire.ErrSubmitting):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: verr.Title, Details: verr.Description})
	case errors.As(err, &serr):
		status := serr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		details := ""
		if serr.Err != nil {
			details = serr.Err.Error()
		}
		c.JSON(status, response.ErrorResponse{Error: serr.Message, Details: details})
	default:
		log.Printf("[Wizard] request failed: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Internal server error"})
	}
}
