//go:build integration
// +build integration

package repository_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/linskybing/client-intake/internal/domain/audit"
	"github.com/linskybing/client-intake/internal/domain/questionnaire"
	"github.com/linskybing/client-intake/internal/domain/submission"
	"github.com/linskybing/client-intake/internal/repository"
	"github.com/linskybing/client-intake/internal/testutils"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	testDB    *gorm.DB
	testRedis *redis.Client
)

func TestMain(m *testing.M) {
	gormDB, cleanupDB := testutils.SetupPostgres()
	rdb, cleanupRedis := testutils.SetupRedis()
	testDB, testRedis = gormDB, rdb
	log.Println("integration stores ready")

	code := m.Run()

	cleanupRedis()
	cleanupDB()
	os.Exit(code)
}

func TestSubmissionRepo_Integration(t *testing.T) {
	repo := repository.NewSubmissionRepo(testDB)
	ctx := context.Background()
	require.NoError(t, testDB.Exec("DELETE FROM submissions").Error)

	t.Run("Create assigns id and timestamp", func(t *testing.T) {
		s := &submission.Submission{FullName: "First", WorkEmail: "first@acme.com"}
		require.NoError(t, repo.CreateSubmission(ctx, s))
		assert.Len(t, s.ID, 36)
		assert.False(t, s.CreatedAt.IsZero())
	})

	time.Sleep(10 * time.Millisecond)
	phone := "555"
	second := &submission.Submission{
		FullName:   "Second",
		WorkEmail:  "second@acme.com",
		Phone:      &phone,
		Services:   "Video Editing; Motion Graphics",
		SourceMeta: map[string]interface{}{"channel": "web"},
	}
	require.NoError(t, repo.CreateSubmission(ctx, second))

	t.Run("List is newest first", func(t *testing.T) {
		subs, err := repo.ListSubmissions(ctx)
		require.NoError(t, err)
		require.Len(t, subs, 2)
		assert.Equal(t, "Second", subs[0].FullName)
		assert.Equal(t, "First", subs[1].FullName)
		assert.Equal(t, "", subs[1].Services)
		assert.Nil(t, subs[1].Phone)
	})

	t.Run("Get round trips every column", func(t *testing.T) {
		got, err := repo.GetSubmissionByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "555", *got.Phone)
		assert.Equal(t, "Video Editing; Motion Graphics", got.Services)
		assert.Equal(t, "web", got.SourceMeta["channel"])
	})

	t.Run("Get and Delete report not found", func(t *testing.T) {
		_, err := repo.GetSubmissionByID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.ErrorIs(t, repo.DeleteSubmission(ctx, "00000000-0000-0000-0000-000000000000"), gorm.ErrRecordNotFound)
	})

	t.Run("Delete removes the row", func(t *testing.T) {
		require.NoError(t, repo.DeleteSubmission(ctx, second.ID))
		subs, err := repo.ListSubmissions(ctx)
		require.NoError(t, err)
		assert.Len(t, subs, 1)
	})
}

func TestDraftRepo_Integration(t *testing.T) {
	repo := repository.NewDraftRepo(testRedis, time.Minute)
	ctx := context.Background()

	w := questionnaire.New()
	require.NoError(t, w.UpdateField(questionnaire.FieldFullName, "Jane"))
	require.NoError(t, w.ToggleMultiSelect(questionnaire.FieldServices, questionnaire.ServiceMetaAds))
	d := questionnaire.Draft{ID: "draft-it-1", State: w.Snapshot(), UpdatedAt: time.Now().UTC()}

	require.NoError(t, repo.SaveDraft(ctx, d))

	ttl, err := testRedis.TTL(ctx, "draft:draft-it-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)

	got, err := repo.GetDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.State.Form.FullName)
	assert.Equal(t, []string{questionnaire.ServiceMetaAds}, got.State.Form.Services)
	assert.Equal(t, []int{1, 2, 6, 7}, got.Wizard().VisibleSteps())

	require.NoError(t, repo.DeleteDraft(ctx, d.ID))
	_, err = repo.GetDraft(ctx, d.ID)
	assert.ErrorIs(t, err, repository.ErrDraftNotFound)
}

func TestAuditRepo_Integration(t *testing.T) {
	repo := repository.NewAuditRepo(testDB)
	ctx := context.Background()
	require.NoError(t, testDB.Exec("DELETE FROM audit_logs").Error)

	old := &audit.AuditLog{Actor: "admin", Action: audit.ActionExport, CreatedAt: time.Now().Add(-48 * time.Hour)}
	require.NoError(t, repo.CreateAuditLog(ctx, old))
	for _, id := range []string{"a", "b"} {
		require.NoError(t, repo.CreateAuditLog(ctx, &audit.AuditLog{Actor: "admin", Action: audit.ActionDelete, ResourceID: id}))
	}

	action := audit.ActionDelete
	logs, err := repo.GetAuditLogs(ctx, repository.AuditQueryParams{Action: &action})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "b", logs[0].ResourceID, "newest first")

	logs, err = repo.GetAuditLogs(ctx, repository.AuditQueryParams{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "a", logs[0].ResourceID)

	n, err := repo.DeleteOldAuditLogs(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	logs, err = repo.GetAuditLogs(ctx, repository.AuditQueryParams{})
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}
