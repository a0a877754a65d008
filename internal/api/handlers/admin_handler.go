package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/client-intake/internal/application"
	"github.com/linskybing/client-intake/internal/domain/audit"
	"github.com/linskybing/client-intake/internal/domain/submission"
	"github.com/linskybing/client-intake/pkg/response"
)

type AdminHandler struct {
	admin  *application.AdminService
	export *application.ExportService
	audit  *application.AuditService
}

func NewAdminHandler(admin *application.AdminService, export *application.ExportService, auditSvc *application.AuditService) *AdminHandler {
	return &AdminHandler{admin: admin, export: export, audit: auditSvc}
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param input body submission.AdminLoginInput true "Credentials"
// @Success 200 {object} submission.AdminToken
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid username or password"
// @Failure 500 {object} response.ErrorResponse "Failed to generate token"
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var input submission.AdminLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	tok, err := h.admin.Login(input)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			recordAudit(h.audit, c, input.Username, audit.ActionLoginFailed, "", "")
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to generate token"})
		return
	}
	recordAudit(h.audit, c, input.Username, audit.ActionLogin, "", "")
	c.JSON(http.StatusOK, tok)
}

// Export godoc
// @Summary Export submissions as CSV
// @Tags admin
// @Produce text/csv
// @Param q query string false "Case-insensitive search over name, email, phone and company"
// @Success 200 {file} file "CSV attachment"
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse "Failed to export submissions"
// @Router /api/admin/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	res, err := h.export.ExportCSV(c.Request.Context(), c.Query("q"))
	if err != nil {
		log.Printf("[Export] error exporting submissions: %v", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to export submissions"})
		return
	}

	recordAudit(h.audit, c, "", audit.ActionExport, "", fmt.Sprintf("%d rows, filter %q", res.Count, c.Query("q")))

	c.Header("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	if res.Location != "" {
		c.Header("X-Export-Location", res.Location)
	}
	c.Data(http.StatusOK, "text/csv; charset=utf-8", res.Data)
}
