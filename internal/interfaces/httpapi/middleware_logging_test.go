package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/afcon-dashboard/internal/platform/logging"
)

func TestRequestLogging_RecordsStatusAndBytes(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONTo(&buf, logging.LevelInfo)

	handler := RequestLogging(logger, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/standings/Z?x=1", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	_ = logger.Sync()

	out := buf.String()
	for _, want := range []string{`"level":"INFO"`, `"status":404`, `"bytes":7`, `"path":"/v1/standings/Z"`, `"query":"x=1"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in log line: %s", want, out)
		}
	}
}

func TestRequestLogging_ServerErrorsLogAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONTo(&buf, logging.LevelInfo)

	handler := RequestLogging(logger, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	_ = logger.Sync()

	if out := buf.String(); !strings.Contains(out, `"level":"ERROR"`) || !strings.Contains(out, `"status":503`) {
		t.Fatalf("unexpected log line: %s", out)
	}
}
