package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/linskybing/client-intake/internal/client"
	"github.com/linskybing/client-intake/internal/domain/audit"
	"github.com/linskybing/client-intake/internal/domain/questionnaire"
	"github.com/linskybing/client-intake/internal/domain/submission"
	"github.com/linskybing/client-intake/internal/export"
	"github.com/olekukonko/tablewriter"
)

// LoginAPI exchanges credentials for a token.
type LoginAPI interface {
	Login(ctx context.Context, username, password string) (submission.AdminToken, error)
}

// AdminAPI is the token-scoped part of the submission API.
type AdminAPI interface {
	List(ctx context.Context) ([]submission.Submission, error)
	Get(ctx context.Context, id string) (submission.Submission, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, term string) (string, []byte, error)
	AuditLogs(ctx context.Context, action string, limit int) ([]audit.AuditLog, error)
}

// AdminView is the terminal counterpart of the admin dashboard.
type AdminView struct {
	driver  PromptDriver
	out     io.Writer
	login   LoginAPI
	connect func(token string) AdminAPI
	now     func() time.Time
}

func NewAdminView(driver PromptDriver, out io.Writer, c *client.Client) *AdminView {
	return &AdminView{
		driver:  driver,
		out:     out,
		login:   c,
		connect: func(token string) AdminAPI { return c.WithToken(token) },
		now:     time.Now,
	}
}

// Login prompts for the password of username and returns the new session.
func (v *AdminView) Login(ctx context.Context, username string) (Session, error) {
	if username == "" {
		var err error
		username, err = v.driver.Input(ctx, InputConfig{Message: "Username", Default: "admin"})
		if err != nil {
			return Session{}, err
		}
	}
	password, err := v.driver.Password(ctx, InputConfig{Message: "Password"})
	if err != nil {
		return Session{}, err
	}

	tok, err := v.login.Login(ctx, username, password)
	if err != nil {
		return Session{}, err
	}
	return Session{Username: username, Token: tok.Token, ExpiresAt: time.Unix(tok.ExpiresAt, 0)}, nil
}

// List prints submissions newest first, optionally narrowed by term.
func (v *AdminView) List(ctx context.Context, s Session, term string) error {
	subs, err := v.api(s).List(ctx)
	if err != nil {
		return err
	}

	var rows [][]string
	for _, sub := range subs {
		if !export.Matches(sub, term) {
			continue
		}
		rows = append(rows, []string{
			sub.ID,
			sub.CreatedAt.Local().Format("2006-01-02 15:04"),
			sub.FullName,
			sub.WorkEmail,
			orNA(deref(sub.CompanyName)),
			sub.Services,
		})
	}
	if len(rows) == 0 {
		_, err = fmt.Fprintln(v.out, "No submissions found")
		return err
	}

	if err := v.renderTable([]string{"ID", "Created", "Name", "Email", "Company", "Services"}, rows); err != nil {
		return err
	}
	_, err = fmt.Fprintf(v.out, "%d of %d submissions\n", len(rows), len(subs))
	return err
}

// Show prints every answer of one submission.
func (v *AdminView) Show(ctx context.Context, s Session, id string) error {
	sub, err := v.api(s).Get(ctx, id)
	if err != nil {
		return err
	}

	rows, err := detailRows(sub)
	if err != nil {
		return err
	}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{row[0], row[1]})
	}
	return v.renderTable([]string{"Field", "Answer"}, cells)
}

// Delete removes a submission after confirmation. It reports whether the
// submission was deleted.
func (v *AdminView) Delete(ctx context.Context, s Session, id string) (bool, error) {
	ok, err := v.driver.Confirm(ctx, ConfirmConfig{Message: fmt.Sprintf("Delete submission %s?", id)})
	if err != nil || !ok {
		return false, err
	}
	if err := v.api(s).Delete(ctx, id); err != nil {
		return false, err
	}
	_, err = fmt.Fprintf(v.out, "Deleted %s\n", id)
	return true, err
}

// Export downloads the CSV for term into dir and returns the written path.
func (v *AdminView) Export(ctx context.Context, s Session, term, dir string) (string, error) {
	if !s.Valid(v.now()) {
		return "", ErrNoSession
	}
	name, data, err := v.api(s).Export(ctx, term)
	if err != nil {
		return "", err
	}
	// The body is the header line alone when nothing matched.
	if !strings.Contains(strings.TrimRight(string(data), "\r\n"), "\n") {
		_, err = fmt.Fprintln(v.out, "No submissions found")
		return "", err
	}
	if name == "" {
		name = "submissions-" + v.now().UTC().Format("2006-01-02") + ".csv"
	}

	path := filepath.Join(dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	_, err = fmt.Fprintf(v.out, "Wrote %s\n", path)
	return path, err
}

// Audit prints the newest admin audit entries.
func (v *AdminView) Audit(ctx context.Context, s Session, action string, limit int) error {
	if !s.Valid(v.now()) {
		return ErrNoSession
	}
	logs, err := v.api(s).AuditLogs(ctx, action, limit)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		_, err = fmt.Fprintln(v.out, "No audit entries found")
		return err
	}

	rows := make([][]string, 0, len(logs))
	for _, e := range logs {
		rows = append(rows, []string{
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Actor,
			e.Action,
			orNA(e.ResourceID),
			orNA(e.IPAddress),
			e.Description,
		})
	}
	return v.renderTable([]string{"When", "Actor", "Action", "Submission", "IP", "Details"}, rows)
}

func (v *AdminView) renderTable(header []string, rows [][]string) error {
	cols := make([]any, len(header))
	for i, h := range header {
		cols[i] = h
	}
	table := tablewriter.NewTable(v.out)
	table.Header(cols...)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func (v *AdminView) api(s Session) AdminAPI {
	token := ""
	if s.Valid(v.now()) {
		token = s.Token
	}
	return v.connect(token)
}

// always marks the answers printed even when blank.
var always = map[string]bool{
	questionnaire.FieldFullName:    true,
	questionnaire.FieldCompanyName: true,
	questionnaire.FieldWorkEmail:   true,
	questionnaire.FieldPhone:       true,
	questionnaire.FieldServices:    true,
}

// detailRows labels a submission's answers with the catalog wording, in
// catalog order. Blank optional answers are skipped.
func detailRows(sub submission.Submission) ([][2]string, error) {
	catalog, err := questionnaire.DefaultCatalog()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(sub)
	if err != nil {
		return nil, err
	}
	var values map[string]interface{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}

	rows := [][2]string{{"ID", sub.ID}}
	for _, page := range catalog.Steps {
		for _, f := range page.Fields {
			val, _ := values[f.Name].(string)
			if val == "" && !always[f.Name] {
				continue
			}
			rows = append(rows, [2]string{f.Label, orNA(val)})
		}
	}
	rows = append(rows, [2]string{"Submitted", sub.CreatedAt.Local().Format("2006-01-02 15:04:05")})
	return rows, nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
