package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spacesedan/review-analyzer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHuggingFaceClient_Classify(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody models.HuggingFaceInferenceRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[{"label":"gratitude","score":0.98},{"label":"joy","score":0.01}]]`))
	}))
	defer srv.Close()

	client := NewHuggingFaceClient(srv.URL, "SamLowe/roberta-base-go_emotions", "secret", 1)
	ranked, err := client.Classify(context.Background(), "thank you", 1)

	require.NoError(t, err)
	assert.Equal(t, []models.Classification{{Label: "gratitude", Score: 0.98}}, ranked)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "/SamLowe/roberta-base-go_emotions", gotPath)
	assert.Equal(t, "thank you", gotBody.Inputs)
	assert.Equal(t, 1, gotBody.Parameters.TopK)
}

func TestHuggingFaceClient_FlatResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"label":"fear","score":0.7321}]`))
	}))
	defer srv.Close()

	client := NewHuggingFaceClient(srv.URL, "model", "", 1)
	ranked, err := client.Classify(context.Background(), "scary", 1)

	require.NoError(t, err)
	assert.Equal(t, []models.Classification{{Label: "fear", Score: 0.7321}}, ranked)
}

func TestHuggingFaceClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"input too long"}`))
	}))
	defer srv.Close()

	client := NewHuggingFaceClient(srv.URL, "model", "", 1)
	_, err := client.Classify(context.Background(), "x", 1)

	assert.EqualError(t, err, "huggingface returned status 400: input too long")
}

func TestHuggingFaceClient_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":true}`))
	}))
	defer srv.Close()

	client := NewHuggingFaceClient(srv.URL, "model", "", 1)
	_, err := client.Classify(context.Background(), "x", 1)

	assert.ErrorContains(t, err, "failed to unmarshal response")
}

func TestHuggingFaceClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.NotEmpty(t, body, "request body must be resent on retry")
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"model is loading","estimated_time":1}`))
			return
		}
		_, _ = w.Write([]byte(`[[{"label":"joy","score":0.9}]]`))
	}))
	defer srv.Close()

	client := NewHuggingFaceClient(srv.URL, "model", "", 3)
	client.initialBackoff = time.Millisecond

	ranked, err := client.Classify(context.Background(), "yay", 1)

	require.NoError(t, err)
	assert.Equal(t, "joy", ranked[0].Label)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHuggingFaceClient_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewHuggingFaceClient(srv.URL, "model", "", 1)
	_, err := client.Classify(context.Background(), "x", 1)

	assert.EqualError(t, err, "huggingface returned status 503")
	assert.Equal(t, int32(1), calls.Load())
}

func TestHuggingFaceClient_HealthCheck(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusOK)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
	}))
	defer srv.Close()

	client := NewHuggingFaceClient(srv.URL, "model", "", 1)
	assert.True(t, client.HealthCheck(context.Background()))

	status.Store(http.StatusBadGateway)
	assert.False(t, client.HealthCheck(context.Background()))
}
