package clients

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spacesedan/review-analyzer/internal/models"
	"golang.org/x/oauth2"
)

// HuggingFaceClient classifies text with a model hosted on the Hugging Face
// inference API.
type HuggingFaceClient struct {
	Client         *http.Client
	endpoint       string
	maxRetries     int
	initialBackoff time.Duration
}

// NewHuggingFaceClient binds the client to baseURL+model. A non-empty token
// is sent as a bearer token on every request.
func NewHuggingFaceClient(baseURL, model, token string, maxRetries int) *HuggingFaceClient {
	timeout := requestTimeout()

	client := &http.Client{}
	if token != "" {
		client = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   "Bearer",
		}))
	}
	client.Timeout = timeout

	slog.Info("[HuggingFaceClient] Initializing Client",
		slog.Duration("timeout", timeout),
		slog.String("model", model),
		slog.Bool("authenticated", token != ""))

	return &HuggingFaceClient{
		Client:         client,
		endpoint:       strings.TrimRight(baseURL, "/") + "/" + model,
		maxRetries:     max(maxRetries, 1),
		initialBackoff: INITIAL_BACKOFF,
	}
}

func (h *HuggingFaceClient) Classify(ctx context.Context, text string, topK int) ([]models.Classification, error) {
	start := time.Now()

	body, err := json.Marshal(models.HuggingFaceInferenceRequest{
		Inputs:     text,
		Parameters: models.HuggingFaceInferenceParameters{TopK: topK},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	resp, err := doWithRetry(ctx, h.Client, "HuggingFaceClient", h.maxRetries, h.initialBackoff, func() (*http.Request, error) {
		return newJSONRequest(ctx, http.MethodPost, h.endpoint, body)
	})
	if err != nil {
		slog.Error("[HuggingFaceClient] Failed request after retries",
			slog.String("endpoint", h.endpoint),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr models.HuggingFaceErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("huggingface returned status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("huggingface returned status %d", resp.StatusCode)
	}

	ranked, err := decodeClassifications(respBody)
	if err != nil {
		slog.Error("[HuggingFaceClient] Failed to unmarshal response",
			slog.String("endpoint", h.endpoint),
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	slog.Debug("[HuggingFaceClient] Classification request successful",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("labels", len(ranked)))

	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked, nil
}

// HealthCheck reports whether the inference endpoint answers without a
// server error.
func (h *HuggingFaceClient) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.endpoint, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := h.Client.Do(req)
	if err != nil {
		slog.Warn("[HuggingFaceClient] Health check failed", slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < 500
}

// decodeClassifications accepts both the batched [[...]] and the flat [...]
// shapes returned for a single input.
func decodeClassifications(body []byte) ([]models.Classification, error) {
	var batched [][]models.Classification
	if err := json.Unmarshal(body, &batched); err == nil {
		if len(batched) == 0 {
			return nil, nil
		}
		return batched[0], nil
	}

	var flat []models.Classification
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, err
	}
	return flat, nil
}
