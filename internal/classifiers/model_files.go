package classifiers

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const onnxSuffix = "-onnx"

// onnxRepository maps a model id to the repository holding its ONNX export.
func onnxRepository(modelName string) string {
	if strings.HasSuffix(modelName, onnxSuffix) {
		return modelName
	}
	return modelName + onnxSuffix
}

// ensureModel returns the local directory of repo under modelDir, calling
// download only when it is not there yet.
func ensureModel(repo, modelDir string, download func(repo, dir string) (string, error)) (string, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create model directory: %w", err)
	}

	modelPath := filepath.Join(modelDir, strings.ReplaceAll(repo, "/", "_"))
	if _, err := os.Stat(modelPath); err == nil {
		slog.Info("[ModelLoader] Using existing model", slog.String("path", modelPath))
		return modelPath, nil
	}

	slog.Info("[ModelLoader] Model not found, downloading...", slog.String("repo", repo))
	downloaded, err := download(repo, modelDir)
	if err != nil {
		return "", fmt.Errorf("failed to download model %s: %w", repo, err)
	}
	slog.Info("[ModelLoader] Model downloaded successfully", slog.String("path", downloaded))

	return downloaded, nil
}
