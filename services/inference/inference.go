package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"infobot/models/constants"

	"github.com/rs/zerolog/log"
)

// New builds the generator for provider. Empty url or model fall back to the
// provider defaults.
func New(provider, url, model, apiKey string) (Service, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case ProviderGroq:
		return &GroqImpl{client: newClient(url, groqDefaultURL, model, groqDefaultModel, apiKey)}, nil
	case ProviderOpenAI:
		return &OpenAIImpl{client: newClient(url, openAIDefaultURL, model, openAIDefaultModel, apiKey)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}

func newClient(url, defaultURL, model, defaultModel, apiKey string) client {
	if url == "" {
		url = defaultURL
	}
	if model == "" {
		model = defaultModel
	}

	return client{
		url:    url,
		model:  model,
		apiKey: apiKey,
		http:   &http.Client{Timeout: clientHTTPTimeout},
	}
}

func (service *GroqImpl) Generate(ctx context.Context, question string) (string, error) {
	var result generateResponse
	payload := generateRequest{Model: service.model, Input: question, MaxOutputTokens: maxOutputTokens}
	if err := service.post(ctx, ProviderGroq, payload, &result); err != nil {
		return "", err
	}

	if result.Output == nil {
		return NoAnswer, nil
	}
	return strings.TrimSpace(*result.Output), nil
}

func (service *OpenAIImpl) Generate(ctx context.Context, question string) (string, error) {
	var result chatResponse
	payload := chatRequest{
		Model:     service.model,
		Messages:  []Message{{Role: "user", Content: question}},
		MaxTokens: maxOutputTokens,
	}
	if err := service.post(ctx, ProviderOpenAI, payload, &result); err != nil {
		return "", err
	}

	if result.Error != nil && result.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", ErrUpstream, result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return NoAnswer, nil
	}
	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

func (c *client) post(ctx context.Context, provider string, payload any, target any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to prepare data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to prepare request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		log.Warn().
			Str(constants.LogProvider, provider).
			Int(constants.LogStatusCode, resp.StatusCode).
			Str("body", string(raw)).
			Msg("Inference request rejected")
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
