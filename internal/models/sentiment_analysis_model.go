package models

// SentimentAnalysisRequest is consumed from the request topic by the worker.
type SentimentAnalysisRequest struct {
	RequestID string `json:"request_id"`
	Text      string `json:"text"`
}

// SentimentAnalysisResult is published to the results topic. Exactly one of
// Result and Error is set.
type SentimentAnalysisResult struct {
	RequestID string            `json:"request_id"`
	Result    *PredictionResult `json:"result,omitempty"`
	Error     string            `json:"error,omitempty"`
}
