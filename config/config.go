package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/samber/lo"
)

// DefaultModelName is the pretrained emotion classifier served by default.
const DefaultModelName = "SamLowe/roberta-base-go_emotions"

const (
	BackendHugot       = "hugot"
	BackendHuggingFace = "huggingface"
	BackendOpenAI      = "openai"
	BackendVader       = "vader"

	CacheNone   = "none"
	CacheMemory = "memory"
	CacheValkey = "valkey"
)

type Config struct {
	AppEnv         string `env:"APP_ENV" envDefault:"dev"`
	Port           string `env:"PORT" envDefault:"8000"`
	GatewayPort    string `env:"GATEWAY_PORT" envDefault:"5001"`
	MetricsAddress string `env:"METRICS_ADDRESS"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string `env:"LOG_FILE"`

	Classifier Classifier
	Cache      Cache
	Gateway    Gateway
	Kafka      Kafka
}

type Classifier struct {
	Backend         string `env:"CLASSIFIER_BACKEND" envDefault:"hugot"`
	ModelName       string `env:"MODEL_NAME"`
	ModelDir        string `env:"MODEL_DIR" envDefault:"./models"`
	OnnxFilename    string `env:"ONNX_FILENAME" envDefault:"model.onnx"`
	HFAPIURL        string `env:"HF_API_URL" envDefault:"https://api-inference.huggingface.co/models/"`
	HFAPIToken      string `env:"HF_API_TOKEN"`
	HFMaxRetries    int    `env:"HF_MAX_RETRIES" envDefault:"1"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	OpenAIModel     string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL   string `env:"OPENAI_BASE_URL"`
	StripMarkdown   bool   `env:"STRIP_MARKDOWN" envDefault:"false"`
	LabelGroupsFile string `env:"LABEL_GROUPS_FILE"`
}

type Cache struct {
	Backend        string        `env:"CACHE_BACKEND" envDefault:"none"`
	TTL            time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	ValkeyAddress  string        `env:"VALKEY_INIT_ADDRESS"`
	ValkeyPassword string        `env:"VALKEY_PASSWORD"`
	ValkeyTLS      bool          `env:"VALKEY_TLS" envDefault:"false"`
}

type Gateway struct {
	MLServiceURL       string   `env:"ML_SERVICE_URL" envDefault:"http://ml-service:8000"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

type Kafka struct {
	Broker       string `env:"KAFKA_BROKER" envDefault:"localhost:29092"`
	GroupID      string `env:"KAFKA_CONSUMER_GROUP_ID" envDefault:"review-analyzer-worker"`
	RequestTopic string `env:"KAFKA_REQUEST_TOPIC" envDefault:"sentiment-request"`
	ResultTopic  string `env:"KAFKA_RESULT_TOPIC" envDefault:"sentiment-results"`
}

// Environment returns APP_ENV, defaulting to "dev".
func Environment() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return env
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if cfg.Classifier.ModelName == "" {
		cfg.Classifier.ModelName = DefaultModelName
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	backends := []string{BackendHugot, BackendHuggingFace, BackendOpenAI, BackendVader}
	if !lo.Contains(backends, c.Classifier.Backend) {
		return fmt.Errorf("CLASSIFIER_BACKEND must be one of %v, got %q", backends, c.Classifier.Backend)
	}

	caches := []string{CacheNone, CacheMemory, CacheValkey}
	if !lo.Contains(caches, c.Cache.Backend) {
		return fmt.Errorf("CACHE_BACKEND must be one of %v, got %q", caches, c.Cache.Backend)
	}
	if c.Cache.Backend == CacheValkey && c.Cache.ValkeyAddress == "" {
		return fmt.Errorf("VALKEY_INIT_ADDRESS is required when CACHE_BACKEND=%s", CacheValkey)
	}

	// valkey expiry has whole-second resolution
	if c.Cache.Backend != CacheNone && c.Cache.TTL < time.Second {
		return fmt.Errorf("CACHE_TTL must be at least 1s, got %s", c.Cache.TTL)
	}

	if c.Classifier.HFMaxRetries < 1 {
		return fmt.Errorf("HF_MAX_RETRIES must be at least 1, got %d", c.Classifier.HFMaxRetries)
	}

	return nil
}
