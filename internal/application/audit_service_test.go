package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/client-intake/internal/domain/audit"
	"github.com/linskybing/client-intake/internal/repository"
	"github.com/linskybing/client-intake/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuditService(t *testing.T) (*AuditService, *mock.MockAuditRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAudit := mock.NewMockAuditRepo(ctrl)
	svc := NewAuditService(&repository.Repos{Audit: mockAudit})
	svc.now = func() time.Time { return time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC) }
	return svc, mockAudit
}

func TestAuditRecord(t *testing.T) {
	svc, mockAudit := setupAuditService(t)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *audit.AuditLog) error {
			assert.Equal(t, "admin", entry.Actor)
			assert.Equal(t, audit.ActionDelete, entry.Action)
			assert.Equal(t, "sub-1", entry.ResourceID)
			return nil
		})

	svc.Record(context.Background(), audit.AuditLog{Actor: "admin", Action: audit.ActionDelete, ResourceID: "sub-1"})
}

func TestAuditRecord_FailureIsSwallowed(t *testing.T) {
	svc, mockAudit := setupAuditService(t)
	mockAudit.EXPECT().CreateAuditLog(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), audit.AuditLog{Action: audit.ActionExport})
	})
}

func TestAuditRecord_NoRepo(t *testing.T) {
	svc := NewAuditService(&repository.Repos{})
	assert.NotPanics(t, func() {
		svc.Record(context.Background(), audit.AuditLog{Action: audit.ActionLogin})
	})
}

func TestQueryAuditLogs_DefaultsLimit(t *testing.T) {
	svc, mockAudit := setupAuditService(t)
	action := audit.ActionExport
	mockAudit.EXPECT().GetAuditLogs(gomock.Any(), repository.AuditQueryParams{Action: &action, Limit: 100}).Return(nil, nil)

	logs, err := svc.QueryAuditLogs(context.Background(), repository.AuditQueryParams{Action: &action})
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestCleanupOldLogs(t *testing.T) {
	svc, mockAudit := setupAuditService(t)
	mockAudit.EXPECT().DeleteOldAuditLogs(gomock.Any(), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)).Return(int64(4), nil)

	n, err := svc.CleanupOldLogs(context.Background(), 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
