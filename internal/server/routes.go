package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func baseRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(Recover)
	return r
}

// NewPredictRouter serves the ML service: a single POST /predict route.
func NewPredictRouter(p predictor) http.Handler {
	r := baseRouter()
	r.Method(http.MethodPost, "/predict", NewPredictHandler(p))
	return r
}

// NewGatewayRouter serves the browser-facing POST /analyze route with CORS.
func NewGatewayRouter(ml mlPredictor, allowedOrigins []string) http.Handler {
	r := baseRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", headerRequestID},
		ExposedHeaders: []string{headerRequestID},
	}))
	r.Method(http.MethodPost, "/analyze", NewAnalyzeHandler(ml))
	return r
}
