package inference

import (
	"context"
	"errors"
	"net/http"
	"time"
)

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"

	groqDefaultURL     = "https://api.groq.ai/v1/generate"
	groqDefaultModel   = "groq-llm"
	openAIDefaultURL   = "https://openrouter.ai/api/v1/chat/completions"
	openAIDefaultModel = "mistralai/mistral-7b-instruct:free"

	clientHTTPTimeout = 30 * time.Second
	maxOutputTokens   = 600
	maxErrorBodyBytes = 512

	NoAnswer = "[No answer returned]"
)

var (
	ErrUnknownProvider = errors.New("unknown inference provider")
	ErrUpstream        = errors.New("inference provider returned an error")
)

// Service is the single capability the bot needs from a language model.
type Service interface {
	Generate(ctx context.Context, question string) (string, error)
}

type generateRequest struct {
	Model           string `json:"model"`
	Input           string `json:"input"`
	MaxOutputTokens int    `json:"max_output_tokens"`
}

type generateResponse struct {
	Output *string `json:"output"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type client struct {
	url    string
	model  string
	apiKey string
	http   *http.Client
}

type GroqImpl struct {
	client
}

type OpenAIImpl struct {
	client
}
