package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/client-intake/internal/application"
	"github.com/linskybing/client-intake/internal/domain/audit"
	"github.com/linskybing/client-intake/internal/domain/submission"
	"github.com/linskybing/client-intake/internal/repository"
	"github.com/linskybing/client-intake/internal/repository/mock"
	"github.com/linskybing/client-intake/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuditRouter(t *testing.T) (*gin.Engine, *handlerMocks, *mock.MockAuditRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &handlerMocks{
		submission: mock.NewMockSubmissionRepo(ctrl),
		draft:      mock.NewMockDraftRepo(ctrl),
	}
	auditRepo := mock.NewMockAuditRepo(ctrl)
	svc := application.New(&repository.Repos{Submission: m.submission, Draft: m.draft, Audit: auditRepo}, nil)
	return testutils.SetupRouter(svc), m, auditRepo
}

func TestAudit_RecordsLoginAttempts(t *testing.T) {
	withAdminPassword(t, "s3cret")
	adminToken(t)
	r, _, auditRepo := setupAuditRouter(t)

	var actions []string
	auditRepo.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, entry *audit.AuditLog) error {
			assert.Equal(t, "admin", entry.Actor)
			actions = append(actions, entry.Action)
			return nil
		})

	testutils.Do(t, r, testutils.Request{
		Method: http.MethodPost,
		Path:   "/api/admin/login",
		Body:   submission.AdminLoginInput{Username: "admin", Password: "nope"},
	})
	testutils.Do(t, r, testutils.Request{
		Method: http.MethodPost,
		Path:   "/api/admin/login",
		Body:   submission.AdminLoginInput{Username: "admin", Password: "s3cret"},
	})
	assert.Equal(t, []string{audit.ActionLoginFailed, audit.ActionLogin}, actions)
}

func TestAudit_RecordsDeleteAndExport(t *testing.T) {
	token := adminToken(t)
	r, m, auditRepo := setupAuditRouter(t)

	var entries []audit.AuditLog
	auditRepo.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, entry *audit.AuditLog) error {
			entries = append(entries, *entry)
			return nil
		})
	m.submission.EXPECT().DeleteSubmission(gomock.Any(), "sub-1").Return(nil)
	m.submission.EXPECT().ListSubmissions(gomock.Any()).Return([]submission.Submission{{ID: "sub-2", FullName: "Jane"}}, nil)

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodDelete, Path: "/api/sub-1"})
	require.Equal(t, http.StatusNoContent, w.Code)
	w = testutils.Do(t, r, testutils.Request{Method: http.MethodGet, Path: "/api/admin/export?q=jane", Token: token})
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, entries, 2)
	assert.Equal(t, audit.ActionDelete, entries[0].Action)
	assert.Equal(t, "sub-1", entries[0].ResourceID)
	assert.Equal(t, "anonymous", entries[0].Actor)
	assert.Equal(t, audit.ActionExport, entries[1].Action)
	assert.Equal(t, "admin", entries[1].Actor)
	assert.Equal(t, `1 rows, filter "jane"`, entries[1].Description)
}

func TestAudit_FailedWriteDoesNotFailRequest(t *testing.T) {
	r, m, auditRepo := setupAuditRouter(t)
	auditRepo.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	m.submission.EXPECT().DeleteSubmission(gomock.Any(), "sub-1").Return(nil)

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodDelete, Path: "/api/sub-1"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListAuditLogs(t *testing.T) {
	token := adminToken(t)
	r, _, auditRepo := setupAuditRouter(t)

	auditRepo.EXPECT().GetAuditLogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p repository.AuditQueryParams) ([]audit.AuditLog, error) {
			require.NotNil(t, p.Action)
			assert.Equal(t, audit.ActionDelete, *p.Action)
			assert.Nil(t, p.Actor)
			assert.Equal(t, 5, p.Limit)
			assert.Equal(t, 10, p.Offset)
			return []audit.AuditLog{{ID: 1, Actor: "admin", Action: audit.ActionDelete, ResourceID: "sub-1"}}, nil
		})

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodGet, Path: "/api/admin/audit?action=delete&limit=5&offset=10", Token: token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var logs []audit.AuditLog
	testutils.DecodeJSON(t, w, &logs)
	require.Len(t, logs, 1)
	assert.Equal(t, "sub-1", logs[0].ResourceID)
}

func TestListAuditLogs_BadQueryAndAuth(t *testing.T) {
	token := adminToken(t)
	r, _, _ := setupAuditRouter(t)

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodGet, Path: "/api/admin/audit?limit=-1", Token: token})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = testutils.Do(t, r, testutils.Request{Method: http.MethodGet, Path: "/api/admin/audit"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListAuditLogs_Failure(t *testing.T) {
	token := adminToken(t)
	r, _, auditRepo := setupAuditRouter(t)
	auditRepo.EXPECT().GetAuditLogs(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	w := testutils.Do(t, r, testutils.Request{Method: http.MethodGet, Path: "/api/admin/audit", Token: token})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch audit logs"}`, w.Body.String())
}
