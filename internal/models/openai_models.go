package models

// OpenAIEmotionResponse is the JSON object the chat model is asked to return.
type OpenAIEmotionResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}
