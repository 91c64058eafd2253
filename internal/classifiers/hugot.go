//go:build ORT || ALL

package classifiers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelineBackends"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/spacesedan/review-analyzer/internal/models"
)

// HugotClassifier runs the ONNX export of the model in-process through
// onnxruntime.
type HugotClassifier struct {
	session  *hugot.Session
	pipeline *pipelines.TextClassificationPipeline
}

func NewHugotClassifier(modelName, modelDir, onnxFilename string) (*HugotClassifier, error) {
	modelPath, err := ensureModel(onnxRepository(modelName), modelDir, func(repo, dir string) (string, error) {
		return hugot.DownloadModel(repo, dir, hugot.NewDownloadOptions())
	})
	if err != nil {
		return nil, err
	}

	session, err := hugot.NewORTSession()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize hugot session: %w", err)
	}

	pipeline, err := hugot.NewPipeline(session, emotionPipelineConfig(modelPath, onnxFilename))
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			slog.Warn("[HugotClassifier] Failed to destroy session", slog.String("error", destroyErr.Error()))
		}
		return nil, fmt.Errorf("failed to initialize text classification pipeline: %w", err)
	}

	return &HugotClassifier{session: session, pipeline: pipeline}, nil
}

// emotionPipelineConfig scores labels independently with a sigmoid, as the
// model is a multi-label go_emotions head.
func emotionPipelineConfig(modelPath, onnxFilename string) hugot.TextClassificationConfig {
	return hugot.TextClassificationConfig{
		ModelPath:    modelPath,
		Name:         "emotionClassificationPipeline",
		OnnxFilename: onnxFilename,
		Options: []pipelineBackends.PipelineOption[*pipelines.TextClassificationPipeline]{
			pipelines.WithSigmoid(),
		},
	}
}

func (h *HugotClassifier) Classify(ctx context.Context, text string, topK int) ([]models.Classification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output, err := h.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, err
	}
	if len(output.ClassificationOutputs) == 0 {
		return nil, fmt.Errorf("pipeline returned no output for input")
	}

	ranked := make([]models.Classification, 0, len(output.ClassificationOutputs[0]))
	for _, out := range output.ClassificationOutputs[0] {
		ranked = append(ranked, models.Classification{
			Label: out.Label,
			Score: float64(out.Score),
		})
	}

	return rankTopK(ranked, topK), nil
}

func (h *HugotClassifier) Close() error {
	return h.session.Destroy()
}
