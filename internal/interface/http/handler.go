package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"faqpilot/internal/domain/qa"
	apperrors "faqpilot/pkg/errors"
)

// Handler wires the HTTP transport to the QA service.
type Handler struct {
	svc    qa.Service
	seed   []qa.FAQEntry
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc qa.Service, seed []qa.FAQEntry, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		seed:   seed,
		logger: logger.With("component", "http.handler"),
	}
}

type askRequest struct {
	Question string `json:"question"`
}

// Ask answers a question from the local cache or the external model.
func (h *Handler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	outcome, err := h.svc.Answer(c.Request.Context(), req.Question)
	if err != nil {
		abortWithError(c, mapServiceError(err))
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// Prime recomputes embeddings for the configured seed set and upserts them.
func (h *Handler) Prime(c *gin.Context) {
	if err := h.svc.PrimeCache(c.Request.Context(), h.seed); err != nil {
		abortWithError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"primed": len(h.seed)})
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// mapServiceError translates error codes into transport statuses. Upstream
// failures are gateway errors; storage and configuration problems are ours.
func mapServiceError(err error) *HTTPError {
	switch {
	case apperrors.IsCode(err, apperrors.CodeInvalidInput):
		return NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidInput, errMessage(err), err)
	case apperrors.IsCode(err, apperrors.CodeEmbedding):
		return NewHTTPError(http.StatusBadGateway, apperrors.CodeEmbedding, errMessage(err), err)
	case apperrors.IsCode(err, apperrors.CodeCompletion):
		return NewHTTPError(http.StatusBadGateway, apperrors.CodeCompletion, errMessage(err), err)
	case apperrors.IsCode(err, apperrors.CodeStorage):
		return NewHTTPError(http.StatusInternalServerError, apperrors.CodeStorage, errMessage(err), err)
	case apperrors.IsCode(err, apperrors.CodeConfig):
		return NewHTTPError(http.StatusInternalServerError, apperrors.CodeConfig, errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal_error", errMessage(err), err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
