package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMLServiceClient_Predict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/predict", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"text":"great"}`, string(body))
		_, _ = w.Write([]byte(`{"sentiment":"positive","label":"joy","confidence":0.9}`))
	}))
	defer srv.Close()

	client := NewMLServiceClient(srv.URL + "/")
	body, err := client.Predict(context.Background(), "great")

	require.NoError(t, err)
	assert.JSONEq(t, `{"sentiment":"positive","label":"joy","confidence":0.9}`, string(body))
}

func TestMLServiceClient_PredictFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"sentiment model is not loaded"}`))
	}))
	defer srv.Close()

	client := NewMLServiceClient(srv.URL)
	_, err := client.Predict(context.Background(), "great")

	assert.EqualError(t, err, "ml service returned status 500: sentiment model is not loaded")
}

func TestMLServiceClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewMLServiceClient(url)
	_, err := client.Predict(context.Background(), "great")

	assert.ErrorContains(t, err, "ml service request failed")
}
