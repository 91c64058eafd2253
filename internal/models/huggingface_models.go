package models

// HuggingFaceInferenceRequest is the body accepted by the hosted inference API
// for text-classification models.
type HuggingFaceInferenceRequest struct {
	Inputs     string                         `json:"inputs"`
	Parameters HuggingFaceInferenceParameters `json:"parameters"`
}

type HuggingFaceInferenceParameters struct {
	TopK int `json:"top_k,omitempty"`
}

type HuggingFaceErrorResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}
