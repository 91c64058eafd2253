package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spacesedan/review-analyzer/internal/models"
	"github.com/spacesedan/review-analyzer/internal/monitoring"
	"github.com/spacesedan/review-analyzer/internal/sentiment"
)

type predictor interface {
	Predict(ctx context.Context, text string) (models.PredictionResult, error)
}

type PredictHandler struct {
	predictor predictor
}

func NewPredictHandler(p predictor) *PredictHandler {
	return &PredictHandler{predictor: p}
}

// ServeHTTP handles POST /predict.
func (h *PredictHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	text, err := decodeReview(r)
	if err != nil {
		monitoring.RecordFailure(monitoring.ReasonInvalidInput)
		slog.Warn("[PredictHandler] Rejected request",
			slog.String("error", err.Error()),
			slog.String("request_id", RequestIDFromContext(r.Context())))
		writeDetail(w, statusFor(err), err.Error())
		return
	}

	result, err := h.predictor.Predict(r.Context(), text)
	if err != nil {
		slog.Error("[PredictHandler] Prediction failed",
			slog.String("error", err.Error()),
			slog.Bool("model_unavailable", errors.Is(err, sentiment.ErrModelUnavailable)),
			slog.String("request_id", RequestIDFromContext(r.Context())))
		writeDetail(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func decodeReview(r *http.Request) (string, error) {
	var input models.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return "", fmt.Errorf("%w: %v", sentiment.ErrInvalidInput, err)
	}
	if err := validateStruct(input); err != nil {
		return "", fmt.Errorf("%w: %v", sentiment.ErrInvalidInput, err)
	}
	return *input.Text, nil
}

// statusFor collapses every failure except undecodable input into a 500.
func statusFor(err error) int {
	if errors.Is(err, sentiment.ErrInvalidInput) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
