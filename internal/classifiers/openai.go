package classifiers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spacesedan/review-analyzer/internal/models"
)

const openAIRequestTimeout = 30 * time.Second

var goEmotionsLabels = []string{
	"admiration", "amusement", "anger", "annoyance", "approval", "caring", "confusion",
	"curiosity", "desire", "disappointment", "disapproval", "disgust", "embarrassment",
	"excitement", "fear", "gratitude", "grief", "joy", "love", "nervousness", "optimism",
	"pride", "realization", "relief", "remorse", "sadness", "surprise", "neutral",
}

var openAIPrompt = `You label the dominant emotion of a product review.
Choose exactly one label from this list:
` + strings.Join(goEmotionsLabels, ", ") + `

Return only valid JSON, with no markdown and no extra text:
{"label": "<label>", "confidence": <number between 0 and 1>}`

type chatCompleter interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAIClassifier asks a chat model for a go_emotions label.
type OpenAIClassifier struct {
	completions chatCompleter
	model       string
}

func NewOpenAIClassifier(apiKey, model, baseURL string) (*OpenAIClassifier, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is required for the openai backend")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(openAIRequestTimeout),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	return &OpenAIClassifier{completions: client.Chat.Completions, model: model}, nil
}

func (o *OpenAIClassifier) Classify(ctx context.Context, text string, _ int) ([]models.Classification, error) {
	completion, err := o.completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openAIPrompt),
			openai.UserMessage(text),
		}),
		Model:       openai.F(openai.ChatModel(o.model)),
		Temperature: openai.Float(0),
	})
	if err != nil {
		return nil, fmt.Errorf("openai completion failed: %w", err)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return nil, errors.New("openai returned an empty response")
	}

	parsed, err := parseEmotionResponse(completion.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	return []models.Classification{parsed}, nil
}

func parseEmotionResponse(raw string) (models.Classification, error) {
	var resp models.OpenAIEmotionResponse
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(cleanOpenAIResponse(raw), &resp); err != nil {
		return models.Classification{}, fmt.Errorf("failed to parse openai response: %w", err)
	}

	label := strings.ToLower(strings.TrimSpace(resp.Label))
	if label == "" {
		return models.Classification{}, errors.New("openai response has no label")
	}

	return models.Classification{
		Label: label,
		Score: min(max(resp.Confidence, 0), 1),
	}, nil
}

// cleanOpenAIResponse strips markdown code fences the model sometimes adds.
func cleanOpenAIResponse(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}
