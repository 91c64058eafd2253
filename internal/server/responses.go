package server

import (
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/spacesedan/review-analyzer/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	raw, err := json.Marshal(body)
	if err != nil {
		slog.Error("[Server] Failed to encode response", slog.String("error", err.Error()))
		writeRaw(w, http.StatusInternalServerError, []byte(`{"detail":"failed to encode response"}`))
		return
	}
	writeRaw(w, status, raw)
}

func writeRaw(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorDetail{Detail: detail})
}
