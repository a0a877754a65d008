package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/client-intake/internal/application"
	"github.com/linskybing/client-intake/internal/domain/audit"
	"github.com/linskybing/client-intake/internal/repository"
	"github.com/linskybing/client-intake/pkg/response"
	"github.com/linskybing/client-intake/pkg/types"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// ListAuditLogs godoc
// @Summary List admin audit entries, newest first
// @Tags admin
// @Produce json
// @Param actor query string false "Admin username"
// @Param action query string false "login, login_failed, delete or export"
// @Param resource_id query string false "Submission ID"
// @Param limit query int false "Page size, default 100"
// @Param offset query int false "Entries to skip"
// @Success 200 {array} audit.AuditLog
// @Failure 400 {object} response.ErrorResponse "Invalid query"
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse "Failed to fetch audit logs"
// @Router /api/admin/audit [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams
	if v := c.Query("actor"); v != "" {
		params.Actor = &v
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}
	if v := c.Query("resource_id"); v != "" {
		params.ResourceID = &v
	}

	var err error
	if params.Limit, err = queryInt(c, "limit"); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid query", Details: err.Error()})
		return
	}
	if params.Offset, err = queryInt(c, "offset"); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid query", Details: err.Error()})
		return
	}

	logs, err := h.svc.QueryAuditLogs(c.Request.Context(), params)
	if err != nil {
		log.Printf("[Audit] error fetching audit logs: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch audit logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", key)
	}
	return n, nil
}

// recordAudit writes one entry for the current request. An empty actor falls
// back to the token's username.
func recordAudit(svc *application.AuditService, c *gin.Context, actor, action, resourceID, description string) {
	if svc == nil {
		return
	}
	if actor == "" {
		actor = actorFromContext(c)
	}
	entry := audit.AuditLog{
		Actor:        actor,
		Action:       action,
		ResourceType: audit.ResourceSubmission,
		ResourceID:   resourceID,
		IPAddress:    c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
		Description:  description,
	}
	svc.Record(c.Request.Context(), entry)
}

func actorFromContext(c *gin.Context) string {
	if v, ok := c.Get("claims"); ok {
		if claims, ok := v.(*types.Claims); ok {
			return claims.Username
		}
	}
	return "anonymous"
}
