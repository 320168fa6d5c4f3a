package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mingle-backend/internal/apperr"
)

type downPinger struct{}

func (downPinger) Ping(context.Context) error { return errors.New("database is closed") }

func TestReadinessDegradedWhenStoreDown(t *testing.T) {
	h := NewHealthHandler(downPinger{}, "sqlite")
	w := httptest.NewRecorder()
	h.ReadinessCheck(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded"`)
	assert.Contains(t, w.Body.String(), "database is closed")
}

type stubForwarder struct {
	got []byte
	out []byte
	err error
}

func (s *stubForwarder) Rank(_ context.Context, body []byte) ([]byte, error) {
	s.got = body
	return s.out, s.err
}

func (s *stubForwarder) Draft(_ context.Context, body []byte) ([]byte, error) {
	s.got = body
	return s.out, s.err
}

func TestOutreachPassesBodyThrough(t *testing.T) {
	fw := &stubForwarder{out: []byte(`{"message":"hello","source":"fallback"}`)}
	h := NewOutreachHandler(fw)

	w := httptest.NewRecorder()
	h.Draft(w, httptest.NewRequest(http.MethodPost, "/api/outreach/draft", strings.NewReader(`{"context":"x"}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"context":"x"}`, string(fw.got))
	assert.JSONEq(t, `{"message":"hello","source":"fallback"}`, w.Body.String())
}

func TestOutreachRendersUpstreamError(t *testing.T) {
	fw := &stubForwarder{err: apperr.Upstream(0, "connect: connection refused", nil)}
	h := NewOutreachHandler(fw)

	w := httptest.NewRecorder()
	h.Rank(w, httptest.NewRequest(http.MethodPost, "/api/outreach/rank", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"connect: connection refused","code":"upstream_error"}`, w.Body.String())
}
