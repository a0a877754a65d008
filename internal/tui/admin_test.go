package tui

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/linskybing/client-intake/internal/client"
	"github.com/linskybing/client-intake/internal/domain/audit"
	"github.com/linskybing/client-intake/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminAPI struct {
	token   string
	subs    []submission.Submission
	deleted []string
	term    string
	csv     string
	audit   []audit.AuditLog
}

func (f *fakeAdminAPI) Login(_ context.Context, username, password string) (submission.AdminToken, error) {
	if username != "admin" || password != "s3cret" {
		return submission.AdminToken{}, &client.APIError{Status: 401, Message: "Invalid username or password"}
	}
	return submission.AdminToken{Token: "tok", ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC).Unix()}, nil
}

func (f *fakeAdminAPI) List(context.Context) ([]submission.Submission, error) {
	return f.subs, nil
}

func (f *fakeAdminAPI) Get(_ context.Context, id string) (submission.Submission, error) {
	for _, s := range f.subs {
		if s.ID == id {
			return s, nil
		}
	}
	return submission.Submission{}, &client.APIError{Status: 404, Message: "Submission not found"}
}

func (f *fakeAdminAPI) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAdminAPI) Export(_ context.Context, term string) (string, []byte, error) {
	f.term = term
	return "submissions-2025-06-01.csv", []byte(f.csv), nil
}

func (f *fakeAdminAPI) AuditLogs(_ context.Context, action string, limit int) ([]audit.AuditLog, error) {
	var out []audit.AuditLog
	for _, e := range f.audit {
		if action == "" || e.Action == action {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func newAdminView(d *stubDriver, api *fakeAdminAPI) (*AdminView, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &AdminView{
		driver: d,
		out:    out,
		login:  api,
		connect: func(token string) AdminAPI {
			api.token = token
			return api
		},
		now: func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) },
	}, out
}

func strPtr(s string) *string { return &s }

func adminFixtures() []submission.Submission {
	return []submission.Submission{
		{ID: "2", FullName: "Jane Doe", WorkEmail: "jane@acme.com", CompanyName: strPtr("Acme"), Services: "Video Editing",
			BusinessModel: strPtr("Subscriptions")},
		{ID: "1", FullName: "Bob", WorkEmail: "bob@example.org"},
	}
}

func TestAdminView_Login(t *testing.T) {
	api := &fakeAdminAPI{}
	v, _ := newAdminView(&stubDriver{passwords: []string{"s3cret"}}, api)

	s, err := v.Login(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token)
	assert.True(t, s.Valid(v.now()))

	v, _ = newAdminView(&stubDriver{inputs: []string{"admin"}, passwords: []string{"nope"}}, api)
	_, err = v.Login(context.Background(), "")
	assert.ErrorContains(t, err, "Invalid username or password")
}

func TestAdminView_ListFiltersAndUsesSession(t *testing.T) {
	api := &fakeAdminAPI{subs: adminFixtures()}
	v, out := newAdminView(&stubDriver{}, api)
	session := Session{Token: "tok", ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}

	require.NoError(t, v.List(context.Background(), session, "ACME"))
	assert.Equal(t, "tok", api.token)
	assert.Contains(t, out.String(), "Jane Doe")
	assert.NotContains(t, out.String(), "bob@example.org")
	assert.Contains(t, out.String(), "1 of 2 submissions")

	out.Reset()
	require.NoError(t, v.List(context.Background(), Session{}, "nobody"))
	assert.Empty(t, api.token)
	assert.Equal(t, "No submissions found\n", out.String())
}

func TestAdminView_Show(t *testing.T) {
	api := &fakeAdminAPI{subs: adminFixtures()}
	v, out := newAdminView(&stubDriver{}, api)

	require.NoError(t, v.Show(context.Background(), Session{}, "1"))
	text := out.String()
	assert.Contains(t, text, "Full Name")
	assert.Contains(t, text, "N/A")
	assert.NotContains(t, text, "Explain your business model")

	out.Reset()
	require.NoError(t, v.Show(context.Background(), Session{}, "2"))
	assert.Contains(t, out.String(), "Subscriptions")

	assert.ErrorIs(t, v.Show(context.Background(), Session{}, "404"), client.ErrNotFound)
}

func TestAdminView_DeleteConfirms(t *testing.T) {
	api := &fakeAdminAPI{}
	v, _ := newAdminView(&stubDriver{confirms: []bool{false, true}}, api)

	ok, err := v.Delete(context.Background(), Session{}, "1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, api.deleted)

	ok, err = v.Delete(context.Background(), Session{}, "1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"1"}, api.deleted)
}

func TestAdminView_Export(t *testing.T) {
	api := &fakeAdminAPI{csv: "id,full_name\n\"1\",\"Jane Doe\"\n"}
	v, _ := newAdminView(&stubDriver{}, api)

	_, err := v.Export(context.Background(), Session{}, "", t.TempDir())
	assert.ErrorIs(t, err, ErrNoSession)

	dir := t.TempDir()
	session := Session{Token: "tok", ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
	path, err := v.Export(context.Background(), session, "jane", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "submissions-2025-06-01.csv"), path)
	assert.Equal(t, "jane", api.term)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, api.csv, string(data))
}

func TestAdminView_ExportNoMatches(t *testing.T) {
	api := &fakeAdminAPI{csv: "id,full_name\n"}
	v, out := newAdminView(&stubDriver{}, api)

	dir := t.TempDir()
	session := Session{Token: "tok", ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
	path, err := v.Export(context.Background(), session, "nobody", dir)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Contains(t, out.String(), "No submissions found")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	_, err := LoadSession(path)
	assert.ErrorIs(t, err, ErrNoSession)

	want := Session{Username: "admin", Token: "tok", ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, SaveSession(path, want))

	got, err := LoadSession(path)
	require.NoError(t, err)
	assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))
	assert.Equal(t, want.Token, got.Token)
	assert.False(t, got.Valid(time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestAdminView_Audit(t *testing.T) {
	api := &fakeAdminAPI{audit: []audit.AuditLog{
		{Actor: "admin", Action: audit.ActionDelete, ResourceID: "sub-1", IPAddress: "10.0.0.1"},
		{Actor: "admin", Action: audit.ActionExport, Description: `2 rows, filter ""`},
	}}
	v, out := newAdminView(&stubDriver{}, api)
	session := Session{Username: "admin", Token: "tok", ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}

	require.NoError(t, v.Audit(context.Background(), session, audit.ActionDelete, 0))
	assert.Equal(t, "tok", api.token)
	assert.Contains(t, out.String(), "sub-1")
	assert.NotContains(t, out.String(), "export")

	out.Reset()
	require.NoError(t, v.Audit(context.Background(), session, "login", 0))
	assert.Equal(t, "No audit entries found\n", out.String())

	assert.ErrorIs(t, v.Audit(context.Background(), Session{}, "", 0), ErrNoSession)
}
