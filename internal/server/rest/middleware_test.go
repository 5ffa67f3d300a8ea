package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/staffscore/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logging.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "bad id\nwith newline")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
}

func TestAccessLog_RecordsStatusAndRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logging.NewZapAdapter(zap.New(core))

	h := RequestID(AccessLog(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)
	req.Header.Set("X-Request-ID", "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.EqualValues(t, http.StatusTeapot, fields["status"])
	assert.Equal(t, "/api/countries", fields["path"])
	assert.Equal(t, "req-1", fields["request_id"])
}

func TestRecoverer(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	l := logging.NewZapAdapter(zap.New(core))

	h := Recoverer(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("kaput")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"internal error"}`, rec.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "panic", logs.All()[0].Message)
}

func TestStaffIDFromContext(t *testing.T) {
	_, ok := StaffIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := context.WithValue(context.Background(), staffIDKey{}, int64(5))
	id, ok := StaffIDFromContext(ctx)
	assert.True(t, ok)
	assert.EqualValues(t, 5, id)
}
