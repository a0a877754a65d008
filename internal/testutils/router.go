package testutils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/client-intake/internal/api/middleware"
	"github.com/linskybing/client-intake/internal/api/routes"
	"github.com/linskybing/client-intake/internal/application"
)

// SetupRouter builds the full API router around svc in gin test mode.
func SetupRouter(svc *application.Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(r, svc)
	return r
}

// Request is a single call against an in-process router.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Token   string
	Headers map[string]string
}

// Do serves req and returns the recorder. A []byte or string Body is sent
// as is; anything else is JSON encoded.
func Do(t *testing.T, r http.Handler, req Request) *httptest.ResponseRecorder {
	t.Helper()

	var body []byte
	switch b := req.Body.(type) {
	case nil:
	case []byte:
		body = b
	case string:
		body = []byte(b)
	default:
		var err error
		body, err = json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

// DecodeJSON unmarshals the recorded body into out.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
