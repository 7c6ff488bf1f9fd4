// Package blurb generates short shelf descriptions for imported books via
// an OpenAI-compatible chat endpoint. Strictly opt-in: nothing in the
// import path touches it, and it stays disabled without an API key.
package blurb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"shelf_backend/core"
)

// ErrDisabled is returned by NewGenerator when no API key is configured.
var ErrDisabled = errors.New("blurb: OPENAI_API_KEY is not configured")

// maxExcerptRunes caps how much book text goes into the prompt.
const maxExcerptRunes = 2000

// ChatClient is the slice of the OpenAI client the generator needs.
// Narrowing to one method keeps tests free of network access.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator produces one-paragraph blurbs for books.
type Generator struct {
	client    ChatClient
	model     string
	maxTokens int
}

// NewGenerator builds a Generator from the backend configuration. Returns
// ErrDisabled when no API key is set so callers can surface a friendly
// message instead of a request failure.
func NewGenerator(cfg *core.Config) (*Generator, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, ErrDisabled
	}
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}
	return &Generator{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.BlurbModel,
		maxTokens: cfg.BlurbMaxTokens,
	}, nil
}

// NewGeneratorWithClient injects a custom client. Used by tests.
func NewGeneratorWithClient(client ChatClient, model string, maxTokens int) *Generator {
	return &Generator{client: client, model: model, maxTokens: maxTokens}
}

// Generate asks the model for a one-paragraph blurb. excerpt may be empty;
// when present it is truncated before being sent.
func (g *Generator) Generate(ctx context.Context, title, author, excerpt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(title, author, excerpt),
			},
		},
		MaxTokens: g.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("blurb: completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("blurb: model returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// buildPrompt assembles the blurb request. Kept separate so tests can pin
// the prompt shape without a client.
func buildPrompt(title, author, excerpt string) string {
	var b strings.Builder
	b.WriteString("Write a single-paragraph shelf blurb (2-3 sentences) for the book ")
	fmt.Fprintf(&b, "%q", title)
	if author != "" {
		fmt.Fprintf(&b, " by %s", author)
	}
	b.WriteString(". Match the language of the title. Do not invent plot details absent from the excerpt.")
	if excerpt != "" {
		b.WriteString("\n\nOpening excerpt:\n")
		b.WriteString(truncateRunes(excerpt, maxExcerptRunes))
	}
	return b.String()
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
