package export

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/linskybing/client-intake/internal/domain/submission"
)

// Headers is the fixed column list of an export.
var Headers = []string{
	"id",
	"full_name",
	"work_email",
	"phone",
	"created_at",
	"services",
	"web_services",
	"ad_goal",
	"business_model",
}

// Filename names an export taken at t, stamped with the UTC date.
func Filename(t time.Time) string {
	return "submissions-" + t.UTC().Format("2006-01-02") + ".csv"
}

// ArchiveKey is the object name used when an export is archived.
func ArchiveKey(t time.Time) string {
	return "exports/submissions-" + t.UTC().Format("20060102T150405Z") + ".csv"
}

// Matches reports whether term occurs, ignoring case, in the submission's
// name, email, phone or company. An empty term matches everything.
func Matches(s submission.Submission, term string) bool {
	q := strings.ToLower(term)
	for _, v := range []string{s.FullName, s.WorkEmail, deref(s.Phone), deref(s.CompanyName)} {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

// Filter keeps the submissions matching term, preserving order.
func Filter(subs []submission.Submission, term string) []submission.Submission {
	out := make([]submission.Submission, 0, len(subs))
	for _, s := range subs {
		if Matches(s, term) {
			out = append(out, s)
		}
	}
	return out
}

// WriteCSV writes the header row followed by one row per submission. Every
// value is double-quoted with inner quotes doubled; lines end with "\n" and
// the last line has no terminator.
func WriteCSV(w io.Writer, subs []submission.Submission) error {
	if _, err := io.WriteString(w, strings.Join(Headers, ",")); err != nil {
		return err
	}
	for _, s := range subs {
		row := make([]string, len(Headers))
		for i, h := range Headers {
			row[i] = quote(column(s, h))
		}
		if _, err := io.WriteString(w, "\n"+strings.Join(row, ",")); err != nil {
			return err
		}
	}
	return nil
}

// Encode renders subs as a CSV document.
func Encode(subs []submission.Submission) []byte {
	var buf bytes.Buffer
	_ = WriteCSV(&buf, subs)
	return buf.Bytes()
}

func column(s submission.Submission, header string) string {
	switch header {
	case "id":
		return s.ID
	case "full_name":
		return s.FullName
	case "work_email":
		return s.WorkEmail
	case "phone":
		return deref(s.Phone)
	case "created_at":
		if s.CreatedAt.IsZero() {
			return ""
		}
		return s.CreatedAt.UTC().Format(time.RFC3339Nano)
	case "services":
		return s.Services
	case "web_services":
		return s.WebServices
	case "ad_goal":
		return deref(s.AdGoal)
	case "business_model":
		return deref(s.BusinessModel)
	}
	return ""
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
