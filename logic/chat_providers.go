package logic

import (
	"bluebot/dto"
	"bluebot/shared"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"google.golang.org/genai"
	"io"
	"net/http"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_chat_provider.go -package mocks bluebot/logic IChatProvider

const (
	providerDeepSeek = "deepseek"
	providerGemini   = "gemini"
	providerOpenAI   = "openai"
)

type ChatRequest struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// IChatProvider is one text generation backend.
type IChatProvider interface {
	Name() string
	Complete(ctx context.Context, req *ChatRequest) (string, error)
}

// NewChatProvider picks the first provider with a credential: DeepSeek, then Gemini, then OpenAI.
func NewChatProvider(cfg *shared.Config, logger shared.ILogger, userAgent shared.IUserAgent, metrics IMetrics) (IChatProvider, error) {
	timeout := time.Second * time.Duration(cfg.HttpTimeoutSec)
	var res IChatProvider
	switch {
	case cfg.Secrets.DeepSeekKey != "":
		res = newChatCompletionProvider(providerDeepSeek, cfg.Text.DeepSeekUrl, cfg.Text.DeepSeekModel,
			cfg.Secrets.DeepSeekKey, timeout, userAgent, metrics)
	case cfg.Secrets.GeminiKey != "":
		client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:  cfg.Secrets.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		res = &geminiProvider{client: client, model: cfg.Text.GeminiModel, metrics: metrics}
	case cfg.Secrets.OpenAIKey != "":
		res = newChatCompletionProvider(providerOpenAI, cfg.Text.OpenAIUrl, cfg.Text.OpenAIModel,
			cfg.Secrets.OpenAIKey, timeout, userAgent, metrics)
	default:
		return nil, ErrNoChatProvider
	}
	logger.Infof("Text generation provider: %s", res.Name())
	return res, nil
}

// Speaks the OpenAI chat-completions dialect, which DeepSeek also serves.
type chatCompletionProvider struct {
	name      string
	url       string
	model     string
	apiKey    string
	client    http.Client
	userAgent shared.IUserAgent
	metrics   IMetrics
}

func newChatCompletionProvider(name, url, model, apiKey string, timeout time.Duration,
	userAgent shared.IUserAgent, metrics IMetrics) *chatCompletionProvider {

	res := chatCompletionProvider{
		name:      name,
		url:       url,
		model:     model,
		apiKey:    apiKey,
		userAgent: userAgent,
		metrics:   metrics,
	}
	res.client.Timeout = timeout
	return &res
}

func (p *chatCompletionProvider) Name() string {
	return p.name
}

func (p *chatCompletionProvider) Complete(ctx context.Context, cr *ChatRequest) (string, error) {

	obs := p.metrics.StartUpstreamRequest(p.name)
	defer obs.Finish()

	reqBody := dto.ChatCompletionRequest{
		Model:       p.model,
		MaxTokens:   cr.MaxTokens,
		Temperature: cr.Temperature,
	}
	if cr.System != "" {
		reqBody.Messages = append(reqBody.Messages, &dto.ChatMessage{Role: "system", Content: cr.System})
	}
	reqBody.Messages = append(reqBody.Messages, &dto.ChatMessage{Role: "user", Content: cr.User})

	bodyJson, err := json.Marshal(&reqBody)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(bodyJson))
	if err != nil {
		return "", err
	}
	p.userAgent.AddUserAgent(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{Service: p.name, Status: resp.StatusCode, Body: string(respBody)}
	}

	var ccr dto.ChatCompletionResponse
	if err = json.Unmarshal(respBody, &ccr); err != nil {
		return "", fmt.Errorf("%s: %w: %v", p.name, ErrMalformedPayload, err)
	}
	if ccr.Error != nil {
		return "", fmt.Errorf("%s: %s", p.name, ccr.Error.Message)
	}
	if len(ccr.Choices) == 0 {
		return "", fmt.Errorf("%s: %w: no choices", p.name, ErrMalformedPayload)
	}
	text := strings.TrimSpace(ccr.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}

type geminiProvider struct {
	client  *genai.Client
	model   string
	metrics IMetrics
}

func (p *geminiProvider) Name() string {
	return providerGemini
}

func (p *geminiProvider) Complete(ctx context.Context, cr *ChatRequest) (string, error) {

	obs := p.metrics.StartUpstreamRequest(providerGemini)
	defer obs.Finish()

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(cr.Temperature)),
	}
	if cr.MaxTokens > 0 {
		config.MaxOutputTokens = int32(cr.MaxTokens)
	}
	if cr.System != "" {
		config.SystemInstruction = genai.NewContentFromText(cr.System, genai.RoleUser)
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(cr.User), config)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", ErrEmptyGeneration
	}
	return text, nil
}
