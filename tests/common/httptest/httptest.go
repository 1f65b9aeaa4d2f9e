//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fervo/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Request describes one call against a router. Body is sent verbatim when it
// is a []byte and JSON-encoded otherwise.
type Request struct {
	Method  string
	Path    string
	Body    any
	Token   string
	Cookies []*http.Cookie
	Header  http.Header
}

func Do(t *testing.T, router http.Handler, r Request) *httptest.ResponseRecorder {
	t.Helper()

	var body []byte
	switch b := r.Body.(type) {
	case nil:
	case []byte:
		body = b
	default:
		encoded, err := json.Marshal(b)
		require.NoError(t, err, "Failed to encode request body to JSON")
		body = encoded
	}

	req := httptest.NewRequest(r.Method, r.Path, bytes.NewReader(body))
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
	for _, c := range r.Cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func PerformRequest(t *testing.T, router http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, router, Request{Method: method, Path: path, Body: body, Token: authToken})
}

func PerformRequestWithCookies(t *testing.T, router http.Handler, method, path string, body any, cookies []*http.Cookie, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, router, Request{Method: method, Path: path, Body: body, Token: authToken, Cookies: cookies})
}

func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "Failed to decode response body")
	return err
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String()) {
		return
	}
	if target != nil && w.Code < http.StatusMultipleChoices {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "Failed to decode response JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the error message contains expectedMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String())
	if msg := ErrorMessage(t, w); expectedMsg != "" {
		assert.Contains(t, msg, expectedMsg, "Response error message doesn't contain expected text")
	}
}

// ErrorMessage decodes an httperr.Response body.
func ErrorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp httperr.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "Failed to decode error response JSON: %s", w.Body.String())
	return resp.Error.Message
}
