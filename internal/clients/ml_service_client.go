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
)

// MLServiceClient forwards reviews from the gateway to the prediction service.
type MLServiceClient struct {
	Client   *http.Client
	endpoint string
}

func NewMLServiceClient(baseURL string) *MLServiceClient {
	timeout := requestTimeout()
	slog.Info("[MLServiceClient] Initializing Client",
		slog.String("url", baseURL),
		slog.Duration("timeout", timeout))

	return &MLServiceClient{
		Client:   &http.Client{Timeout: timeout},
		endpoint: strings.TrimRight(baseURL, "/") + "/predict",
	}
}

// Predict returns the raw JSON body of a successful /predict call. Any non-2xx
// answer is an error.
func (m *MLServiceClient) Predict(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()

	body, err := json.Marshal(models.ReviewInput{Text: &text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := newJSONRequest(ctx, http.MethodPost, m.endpoint, body)
	if err != nil {
		return nil, err
	}

	resp, err := m.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ml service request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var detail models.ErrorDetail
		if json.Unmarshal(respBody, &detail) == nil && detail.Detail != "" {
			return nil, fmt.Errorf("ml service returned status %d: %s", resp.StatusCode, detail.Detail)
		}
		return nil, fmt.Errorf("ml service returned status %d", resp.StatusCode)
	}

	slog.Debug("[MLServiceClient] Prediction request successful",
		slog.Duration("elapsed", time.Since(start)))

	return respBody, nil
}
