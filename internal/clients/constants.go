package clients

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	MAX_RETRIES     = 5
	INITIAL_BACKOFF = 1 * time.Second
	MAX_BACKOFF     = 32 * time.Second
	USER_AGENT      = "review-analyzer-client/1.0 (+https://github.com/spacesedan/review-analyzer)"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary
