package consumers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/spacesedan/review-analyzer/internal/models"
	"github.com/spacesedan/review-analyzer/internal/monitoring"
	"github.com/spacesedan/review-analyzer/internal/sentiment"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	publishAttempts = 3
	publishDelay    = 2 * time.Second
	pauseInterval   = 5 * time.Second
)

type messageSource interface {
	Next(ctx context.Context) (*kafka.Message, error)
}

type offsetCommitter interface {
	Commit(ctx context.Context, msg *kafka.Message) error
}

type publisher interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

type predictor interface {
	Predict(ctx context.Context, text string) (models.PredictionResult, error)
}

// PredictionConsumer turns review requests from Kafka into prediction
// results. A message offset is only committed once its result is published.
type PredictionConsumer struct {
	source      messageSource
	committer   offsetCommitter
	publisher   publisher
	predictor   predictor
	resultTopic string
	healthy     *atomic.Bool

	publishDelay  time.Duration
	pauseInterval time.Duration
}

func NewPredictionConsumer(
	source messageSource,
	committer offsetCommitter,
	pub publisher,
	p predictor,
	resultTopic string,
	healthy *atomic.Bool,
) *PredictionConsumer {
	return &PredictionConsumer{
		source:        source,
		committer:     committer,
		publisher:     pub,
		predictor:     p,
		resultTopic:   resultTopic,
		healthy:       healthy,
		publishDelay:  publishDelay,
		pauseInterval: pauseInterval,
	}
}

// Run consumes until ctx is done or the message source fails for good.
func (c *PredictionConsumer) Run(ctx context.Context) error {
	slog.Info("[PredictionConsumer] Listening for messages...")

	for {
		if ctx.Err() != nil {
			slog.Warn("[PredictionConsumer] Consumer shutting down...")
			return nil
		}

		if c.healthy != nil && !c.healthy.Load() {
			slog.Warn("[PredictionConsumer] Classifier unhealthy, pausing consumption",
				slog.Duration("retry_in", c.pauseInterval))
			select {
			case <-ctx.Done():
			case <-time.After(c.pauseInterval):
			}
			continue
		}

		msg, err := c.source.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			return err
		}

		if err := c.handle(ctx, msg); err != nil {
			slog.Error("[PredictionConsumer] Failed to handle message",
				slog.String("error", err.Error()),
				slog.String("offset", msg.TopicPartition.Offset.String()))
		}
	}
}

func (c *PredictionConsumer) handle(ctx context.Context, msg *kafka.Message) error {
	result := c.process(ctx, msg.Value)

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if err := c.publish(ctx, []byte(result.RequestID), payload); err != nil {
		return err
	}

	return c.committer.Commit(ctx, msg)
}

// process never fails: undecodable requests and prediction errors are
// reported on the result topic instead.
func (c *PredictionConsumer) process(ctx context.Context, value []byte) models.SentimentAnalysisResult {
	var req models.SentimentAnalysisRequest
	if err := json.Unmarshal(value, &req); err != nil {
		monitoring.RecordFailure(monitoring.ReasonInvalidInput)
		id := uuid.NewString()
		slog.Warn("[PredictionConsumer] Failed to deserialize request",
			slog.String("error", err.Error()),
			slog.String("request_id", id))
		return models.SentimentAnalysisResult{
			RequestID: id,
			Error:     fmt.Errorf("%w: %v", sentiment.ErrInvalidInput, err).Error(),
		}
	}

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	prediction, err := c.predictor.Predict(ctx, req.Text)
	if err != nil {
		slog.Error("[PredictionConsumer] Prediction failed",
			slog.String("error", err.Error()),
			slog.String("request_id", req.RequestID))
		return models.SentimentAnalysisResult{RequestID: req.RequestID, Error: err.Error()}
	}

	return models.SentimentAnalysisResult{RequestID: req.RequestID, Result: &prediction}
}

func (c *PredictionConsumer) publish(ctx context.Context, key, payload []byte) error {
	var err error
	for i := 0; i < publishAttempts; i++ {
		if err = c.publisher.Publish(ctx, c.resultTopic, key, payload); err == nil {
			return nil
		}

		slog.Warn("[PredictionConsumer] Publishing failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.publishDelay):
		}
	}
	return fmt.Errorf("failed to publish result after %d attempts: %w", publishAttempts, err)
}
