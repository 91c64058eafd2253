package classifiers

import (
	"github.com/spacesedan/review-analyzer/config"
	"github.com/spacesedan/review-analyzer/internal/clients"
)

// NewRemoteClassifier serves the model through the hosted inference API. The
// endpoint is not probed here; availability is tracked by the health monitor.
func NewRemoteClassifier(cfg config.Classifier) *clients.HuggingFaceClient {
	return clients.NewHuggingFaceClient(cfg.HFAPIURL, cfg.ModelName, cfg.HFAPIToken, cfg.HFMaxRetries)
}
