package models

// Classification is one ranked (label, score) pair produced by a classifier.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ReviewInput is the /predict request body. Text is a pointer so a missing
// field can be told apart from an empty string.
type ReviewInput struct {
	Text *string `json:"text" validate:"required"`
}

type PredictionResult struct {
	Sentiment  string  `json:"sentiment"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

type ErrorDetail struct {
	Detail string `json:"detail"`
}
