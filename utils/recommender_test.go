package utils_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"edumate/config"
	"edumate/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiStub(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		w.WriteHeader(status)
		if status == http.StatusOK {
			fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
		}
	}))
}

func TestGetRecommendations(t *testing.T) {
	server := geminiStub(t, http.StatusOK, "1. Go from Scratch\n2. Advanced Go\n- Web APIs with Fiber\n\n")
	defer server.Close()

	config.AppConfig = &config.Config{
		GeminiApiURL: server.URL,
		GeminiApiKey: "test-key",
	}

	recommendations, err := utils.GetRecommendations("browsed: Go basics, enrolled: none")
	require.NoError(t, err)

	// List markers and blank lines are stripped
	assert.Equal(t, []string{"Go from Scratch", "Advanced Go", "Web APIs with Fiber"}, recommendations)
}

func TestGetRecommendationsUpstreamError(t *testing.T) {
	server := geminiStub(t, http.StatusInternalServerError, "")
	defer server.Close()

	config.AppConfig = &config.Config{
		GeminiApiURL: server.URL,
		GeminiApiKey: "test-key",
	}

	_, err := utils.GetRecommendations("browsed: Go basics")
	assert.Error(t, err)
}

func TestGetRecommendationsEmptyAnswer(t *testing.T) {
	server := geminiStub(t, http.StatusOK, "\n \n")
	defer server.Close()

	config.AppConfig = &config.Config{
		GeminiApiURL: server.URL,
		GeminiApiKey: "test-key",
	}

	_, err := utils.GetRecommendations("browsed: Go basics")
	assert.Error(t, err)
}

func TestGetRecommendationsUnconfigured(t *testing.T) {
	config.AppConfig = &config.Config{}

	_, err := utils.GetRecommendations("browsed: Go basics")
	assert.Error(t, err)
}
