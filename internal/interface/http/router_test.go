package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"faqpilot/internal/domain/qa"
	"faqpilot/internal/infra/config"
	apperrors "faqpilot/pkg/errors"
)

type stubService struct {
	outcome    qa.Outcome
	answerErr  error
	primeErr   error
	primeCalls int
}

func (s *stubService) Answer(_ context.Context, _ string) (qa.Outcome, error) {
	if s.answerErr != nil {
		return qa.Outcome{}, s.answerErr
	}
	return s.outcome, nil
}

func (s *stubService) PrimeCache(_ context.Context, _ []qa.FAQEntry) error {
	s.primeCalls++
	return s.primeErr
}

func newTestServer(svc qa.Service) *http.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(svc, qa.DefaultSeed(), logger)
	cfg := &config.Config{HTTP: config.HTTPConfig{Address: ":0"}}
	return NewRouter(cfg, handler, logger)
}

func TestAskReturnsOutcome(t *testing.T) {
	svc := &stubService{outcome: qa.Outcome{
		Question:        "How can I reset my password?",
		Answer:          "Go to settings...",
		Source:          qa.SourceLocal,
		MatchedQuestion: "How do I reset my password?",
		Score:           0.93,
	}}
	server := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/questions", strings.NewReader(`{"question":"How can I reset my password?"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out qa.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, qa.SourceLocal, out.Source)
	require.Equal(t, "How do I reset my password?", out.MatchedQuestion)
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAskRejectsMalformedBody(t *testing.T) {
	server := newTestServer(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/questions", strings.NewReader(`{`))
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskMapsErrorCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid input", apperrors.Wrap(apperrors.CodeInvalidInput, "question cannot be empty", nil), http.StatusBadRequest},
		{"embedding failure", apperrors.Wrap(apperrors.CodeEmbedding, "status=500", nil), http.StatusBadGateway},
		{"completion failure", apperrors.Wrap(apperrors.CodeCompletion, "status=503", nil), http.StatusBadGateway},
		{"storage failure", apperrors.Wrap(apperrors.CodeStorage, "db down", nil), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer(&stubService{answerErr: tc.err})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/questions", strings.NewReader(`{"question":"x"}`))
			rec := httptest.NewRecorder()
			server.Handler.ServeHTTP(rec, req)

			require.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestPrimeEndpoint(t *testing.T) {
	svc := &stubService{}
	server := newTestServer(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/prime", nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, svc.primeCalls)
	require.Contains(t, rec.Body.String(), "primed")
}

func TestHealthz(t *testing.T) {
	server := newTestServer(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
