package classifiers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spacesedan/review-analyzer/config"
	"github.com/spacesedan/review-analyzer/internal/clients"
	"github.com/spacesedan/review-analyzer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Backends(t *testing.T) {
	vader, err := Load(context.Background(), config.Classifier{Backend: config.BackendVader})
	require.NoError(t, err)
	assert.IsType(t, &VaderClassifier{}, vader)

	remote, err := Load(context.Background(), config.Classifier{
		Backend:      config.BackendHuggingFace,
		HFAPIURL:     "http://127.0.0.1:1",
		ModelName:    config.DefaultModelName,
		HFMaxRetries: 1,
	})
	require.NoError(t, err)
	assert.IsType(t, &clients.HuggingFaceClient{}, remote)
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Classifier
		wantErr string
	}{
		{"unknown backend", config.Classifier{Backend: "bert"}, `unknown classifier backend "bert"`},
		{"openai without key", config.Classifier{Backend: config.BackendOpenAI}, "OPENAI_API_KEY is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier, err := Load(context.Background(), tt.cfg)

			assert.Nil(t, classifier)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	classifier, err := Load(ctx, config.Classifier{Backend: config.BackendVader})

	assert.Nil(t, classifier)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRankTopK(t *testing.T) {
	ranked := rankTopK([]models.Classification{
		{Label: "neutral", Score: 0.1},
		{Label: "joy", Score: 0.8},
		{Label: "love", Score: 0.8},
		{Label: "anger", Score: 0.05},
	}, 2)

	assert.Equal(t, []models.Classification{
		{Label: "joy", Score: 0.8},
		{Label: "love", Score: 0.8},
	}, ranked)

	all := rankTopK([]models.Classification{{Label: "a", Score: 0.1}, {Label: "b", Score: 0.2}}, 0)
	assert.Equal(t, "b", all[0].Label)
	assert.Len(t, all, 2)
}

func TestOnnxRepository(t *testing.T) {
	assert.Equal(t, "SamLowe/roberta-base-go_emotions-onnx", onnxRepository(config.DefaultModelName))
	assert.Equal(t, "org/model-onnx", onnxRepository("org/model-onnx"))
}

func TestEnsureModel_UsesExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "org_model-onnx")
	require.NoError(t, os.MkdirAll(existing, 0o755))

	path, err := ensureModel("org/model-onnx", dir, func(string, string) (string, error) {
		t.Fatal("download must not be called for an existing model")
		return "", nil
	})

	require.NoError(t, err)
	assert.Equal(t, existing, path)
}

func TestEnsureModel_Downloads(t *testing.T) {
	dir := t.TempDir()
	var gotRepo, gotDir string

	path, err := ensureModel("org/model-onnx", dir, func(repo, d string) (string, error) {
		gotRepo, gotDir = repo, d
		return filepath.Join(d, "downloaded"), nil
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "downloaded"), path)
	assert.Equal(t, "org/model-onnx", gotRepo)
	assert.Equal(t, dir, gotDir)
}

func TestEnsureModel_DownloadFailure(t *testing.T) {
	_, err := ensureModel("org/model-onnx", t.TempDir(), func(string, string) (string, error) {
		return "", errors.New("403 forbidden")
	})

	assert.EqualError(t, err, "failed to download model org/model-onnx: 403 forbidden")
}
