package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/spacesedan/review-analyzer/internal/models"
)

const (
	invalidTextMessage    = `Missing or invalid "text" field`
	analyzeFailureMessage = "Failed to analyze sentiment"
)

type mlPredictor interface {
	Predict(ctx context.Context, text string) ([]byte, error)
}

// AnalyzeHandler is the public entry point of the gateway. It validates the
// review and relays the ML service answer untouched.
type AnalyzeHandler struct {
	ml mlPredictor
}

func NewAnalyzeHandler(ml mlPredictor) *AnalyzeHandler {
	return &AnalyzeHandler{ml: ml}
}

func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || validateStruct(req) != nil {
		writeJSON(w, http.StatusBadRequest, models.AnalyzeError{Error: invalidTextMessage})
		return
	}

	body, err := h.ml.Predict(r.Context(), req.Text)
	if err != nil {
		slog.Error("[AnalyzeHandler] ML API error",
			slog.String("error", err.Error()),
			slog.String("request_id", RequestIDFromContext(r.Context())))
		writeJSON(w, http.StatusInternalServerError, models.AnalyzeError{Error: analyzeFailureMessage})
		return
	}

	writeRaw(w, http.StatusOK, body)
}
