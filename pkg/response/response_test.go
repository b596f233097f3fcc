package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "parentsguide-srv/pkg/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return body
}

func TestError(t *testing.T) {
	tcs := map[string]struct {
		err     error
		status  int
		message string
	}{
		"http error": {err: pkgErrors.NewHTTPError(404, "Not found"), status: 404, message: "Not found"},
		"other":      {err: errors.New("boom"), status: 500, message: MessageInternalError},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			c, w := newContext()
			Error(c, tc.err)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			if got := decode(t, w)["message"]; got != tc.message {
				t.Fatalf("message = %v, want %s", got, tc.message)
			}
		})
	}
}

func TestErrorBody(t *testing.T) {
	c, w := newContext()
	ErrorBody(c, pkgErrors.NewHTTPError(400, "Invalid catalog ID"))
	if w.Code != 400 || decode(t, w)["error"] != "Invalid catalog ID" {
		t.Fatalf("got %d %s", w.Code, w.Body.String())
	}

	c, w = newContext()
	ErrorBody(c, errors.New("boom"))
	if w.Code != 500 || decode(t, w)["error"] != MessageInternalError {
		t.Fatalf("got %d %s", w.Code, w.Body.String())
	}
}

func TestPanicError(t *testing.T) {
	c, w := newContext()
	PanicError(c, "boom")
	if w.Code != 500 {
		t.Fatalf("status = %d", w.Code)
	}
}
