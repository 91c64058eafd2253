//go:build ORT || ALL

package classifiers

import (
	"testing"

	"github.com/knights-analytics/hugot/pipelines"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmotionPipelineConfig_UsesSigmoid(t *testing.T) {
	config := emotionPipelineConfig("/models/roberta", "model.onnx")

	assert.Equal(t, "/models/roberta", config.ModelPath)
	assert.Equal(t, "model.onnx", config.OnnxFilename)
	require.Len(t, config.Options, 1)

	pipeline := &pipelines.TextClassificationPipeline{}
	for _, opt := range config.Options {
		opt(pipeline)
	}
	assert.Equal(t, "SIGMOID", pipeline.AggregationFunctionName)
}
