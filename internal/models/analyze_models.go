package models

type AnalyzeRequest struct {
	Text string `json:"text" validate:"required"`
}

type AnalyzeError struct {
	Error string `json:"error"`
}
