package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/subosito/gotenv"
)

const envDir = "config/envs"

// LoadEnv applies config/envs/.env.<env>, falling back to ./.env. Variables
// already present in the process environment win over file values.
func LoadEnv(env string) {
	for _, file := range []string{filepath.Join(envDir, ".env."+env), ".env"} {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := gotenv.Load(file); err != nil {
			slog.Warn("[Config] Failed to load env file",
				slog.String("file", file),
				slog.String("error", err.Error()))
			continue
		}
		slog.Info("[Config] Loaded env file", slog.String("file", file))
		return
	}
	slog.Warn("[Config] No .env file found, using OS environment", slog.String("app_env", env))
}
