package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// prefix the session adds in front of every endpoint path.
const testPrefix = "/api/v0"

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-key", WithHost(srv.URL), WithLogger(quietLogger()))
	require.NoError(t, err)
	return c
}

func jsonHandler(t *testing.T, path, body string) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(testPrefix+path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
	return mux
}
