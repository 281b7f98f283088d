package logic_test

import (
	"bluebot/dto"
	"bluebot/logic"
	"bluebot/mocks"
	"bluebot/shared"
	"context"
	"encoding/json"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"net/http"
	"net/http/httptest"
	"testing"
)

func setupChatProviderTest(t *testing.T, handler http.HandlerFunc) (*gomock.Controller, logic.IChatProvider) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockUserAgent := mocks.NewMockIUserAgent(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	stubLogger(mockLogger)
	stubUserAgent(mockUserAgent)
	stubMetrics(ctrl, mockMetrics)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := testConfig(t)
	cfg.Secrets = shared.Secrets{DeepSeekKey: "ds-key", OpenAIKey: "oa-key"}
	cfg.Text.DeepSeekUrl = srv.URL + "/chat/completions"
	cfg.Text.DeepSeekModel = "deepseek-chat"

	provider, err := logic.NewChatProvider(cfg, mockLogger, mockUserAgent, mockMetrics)
	require.Nil(t, err)
	return ctrl, provider
}

func Test_Chat_Provider_Deepseek_First(t *testing.T) {
	var got dto.ChatCompletionRequest
	ctrl, provider := setupChatProviderTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer ds-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Nil(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"x","choices":[{"index":0,"message":{"role":"assistant","content":"  Coffee first.  "}}]}`))
	})
	defer ctrl.Finish()

	assert.Equal(t, "deepseek", provider.Name())
	text, err := provider.Complete(context.Background(), &logic.ChatRequest{
		System:      "You are Joe.",
		User:        "Coffee?",
		MaxTokens:   40,
		Temperature: 1.5,
	})
	require.Nil(t, err)
	assert.Equal(t, "Coffee first.", text)

	assert.Equal(t, "deepseek-chat", got.Model)
	assert.Equal(t, 40, got.MaxTokens)
	assert.Equal(t, 1.5, got.Temperature)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, dto.ChatMessage{Role: "system", Content: "You are Joe."}, *got.Messages[0])
	assert.Equal(t, dto.ChatMessage{Role: "user", Content: "Coffee?"}, *got.Messages[1])
}

func Test_Chat_Provider_Upstream_Error(t *testing.T) {
	ctrl, provider := setupChatProviderTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"Insufficient Balance"}}`))
	})
	defer ctrl.Finish()

	_, err := provider.Complete(context.Background(), &logic.ChatRequest{User: "hi"})
	var upstream *logic.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "deepseek", upstream.Service)
	assert.Equal(t, http.StatusPaymentRequired, upstream.Status)
	assert.Contains(t, upstream.Body, "Insufficient Balance")
}

func Test_Chat_Provider_Bad_Payloads(t *testing.T) {
	bodies := []string{`not json`, `{"choices":[]}`}
	for _, body := range bodies {
		ctrl, provider := setupChatProviderTest(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		_, err := provider.Complete(context.Background(), &logic.ChatRequest{User: "hi"})
		assert.ErrorIs(t, err, logic.ErrMalformedPayload, body)
		ctrl.Finish()
	}

	ctrl, provider := setupChatProviderTest(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"   "}}]}`))
	})
	defer ctrl.Finish()
	_, err := provider.Complete(context.Background(), &logic.ChatRequest{User: "hi"})
	assert.ErrorIs(t, err, logic.ErrEmptyGeneration)
}

func Test_Chat_Provider_None_Configured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := mocks.NewMockILogger(ctrl)
	mockUserAgent := mocks.NewMockIUserAgent(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)

	cfg := testConfig(t)
	cfg.Secrets = shared.Secrets{}
	_, err := logic.NewChatProvider(cfg, mockLogger, mockUserAgent, mockMetrics)
	assert.ErrorIs(t, err, logic.ErrNoChatProvider)
}
