package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/linskybing/client-intake/internal/config"
	"github.com/linskybing/client-intake/internal/domain/audit"
	"github.com/linskybing/client-intake/internal/domain/questionnaire"
	"github.com/linskybing/client-intake/internal/domain/submission"
)

// ErrNotFound is matched by an APIError carrying a 404.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx answer from the sink.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// Client talks to the submission API. It implements questionnaire.Sink.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

var _ questionnaire.Sink = (*Client)(nil)

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// NewFromConfig uses API_URL and HTTP_TIMEOUT.
func NewFromConfig() *Client {
	return New(config.APIURL, config.HTTPTimeout)
}

// WithToken returns a copy that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Create posts a finished questionnaire to /api/submit. Failures come back as
// *questionnaire.SubmitError so the wizard can report them.
func (c *Client) Create(ctx context.Context, payload questionnaire.SubmissionPayload) (questionnaire.Receipt, error) {
	var created submission.Submission
	err := c.do(ctx, http.MethodPost, "/api/submit", payload, &created)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return questionnaire.Receipt{}, &questionnaire.SubmitError{
				Kind:    questionnaire.FailureServer,
				Status:  apiErr.Status,
				Message: apiErr.Message,
				Err:     err,
			}
		}
		return questionnaire.Receipt{}, &questionnaire.SubmitError{
			Kind:    questionnaire.FailureTransport,
			Message: questionnaire.GenericSubmitFailure,
			Err:     err,
		}
	}
	return questionnaire.Receipt{ID: created.ID, CreatedAt: created.CreatedAt}, nil
}

func (c *Client) List(ctx context.Context) ([]submission.Submission, error) {
	subs := []submission.Submission{}
	if err := c.do(ctx, http.MethodGet, "/api/all", nil, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (c *Client) Get(ctx context.Context, id string) (submission.Submission, error) {
	var sub submission.Submission
	err := c.do(ctx, http.MethodGet, "/api/"+url.PathEscape(id), nil, &sub)
	return sub, err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Login(ctx context.Context, username, password string) (submission.AdminToken, error) {
	var tok submission.AdminToken
	err := c.do(ctx, http.MethodPost, "/api/admin/login", submission.AdminLoginInput{Username: username, Password: password}, &tok)
	return tok, err
}

// Export downloads the CSV export for term and returns the server's filename.
func (c *Client) Export(ctx context.Context, term string) (string, []byte, error) {
	path := "/api/admin/export"
	if term != "" {
		path += "?q=" + url.QueryEscape(term)
	}

	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", nil, apiError(resp.StatusCode, data)
	}
	return attachmentName(resp.Header.Get("Content-Disposition")), data, nil
}

// AuditLogs returns the newest admin audit entries, optionally narrowed to one
// action. limit <= 0 leaves the page size to the server.
func (c *Client) AuditLogs(ctx context.Context, action string, limit int) ([]audit.AuditLog, error) {
	q := url.Values{}
	if action != "" {
		q.Set("action", action)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/admin/audit"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	logs := []audit.AuditLog{}
	if err := c.do(ctx, http.MethodGet, path, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (c *Client) send(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.http.Do(req)
}

// apiError picks the message a user sees: the body's error, then its
// details, then the bare status.
func apiError(status int, body []byte) *APIError {
	var envelope struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &APIError{Status: status, Message: "Unknown error"}
	}
	msg := envelope.Error
	if msg == "" {
		msg = envelope.Details
	}
	if msg == "" {
		msg = fmt.Sprintf("Server error: %d", status)
	}
	return &APIError{Status: status, Message: msg}
}

func attachmentName(disposition string) string {
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
