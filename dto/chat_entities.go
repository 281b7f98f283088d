package dto

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string         `json:"model"`
	Messages    []*ChatMessage `json:"messages"`
	MaxTokens   int            `json:"max_tokens,omitempty"`
	Temperature float64        `json:"temperature"`
}

type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type ChatCompletionResponse struct {
	Id      string        `json:"id"`
	Model   string        `json:"model"`
	Choices []*ChatChoice `json:"choices"`
	Error   *ChatError    `json:"error,omitempty"`
}

type ChatError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type ImageInferenceRequest struct {
	Inputs string `json:"inputs"`
}
