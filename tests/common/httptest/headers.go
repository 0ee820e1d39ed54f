//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks response headers. An empty expected value asserts
// the header is absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.NotContains(t, w.Header(), http.CanonicalHeaderKey(k), "header %s should not be set", k)
			continue
		}
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertFreshResult checks a first-time idempotent write.
func AssertFreshResult(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	AssertHeaders(t, w, map[string]string{"Idempotent-Replayed": ""})
}
