//go:build !ORT && !ALL

package classifiers

import (
	"context"
	"errors"

	"github.com/spacesedan/review-analyzer/internal/models"
)

var errHugotUnavailable = errors.New("hugot backend requires building with -tags ORT and the onnxruntime library")

// HugotClassifier is unavailable in builds without onnxruntime.
type HugotClassifier struct{}

func NewHugotClassifier(modelName, modelDir, onnxFilename string) (*HugotClassifier, error) {
	return nil, errHugotUnavailable
}

func (h *HugotClassifier) Classify(context.Context, string, int) ([]models.Classification, error) {
	return nil, errHugotUnavailable
}
