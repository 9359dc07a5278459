package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"wacs.com.ng/support-chatbot/internal/config"
	"wacs.com.ng/support-chatbot/internal/store"
)

const defaultChatModelName = "claude-sonnet-4-5"

// Turn is one entry of the conversation sent to the model.
type Turn struct {
	Role    string
	Content string
}

// Generator is the generation collaborator the orchestrator depends on.
// Tests inject a fake; production uses LLMService.
type Generator interface {
	Generate(ctx context.Context, systemPrompt string, turns []Turn, maxTokens int64, temperature float64) (string, error)
}

// LLMService wraps the Anthropic Messages API.
type LLMService struct {
	client anthropic.Client
	model  anthropic.Model
}

func NewLLMService() *LLMService {
	client := anthropic.NewClient(option.WithAPIKey(config.AppConfig.AnthropicAPIKey))
	return &LLMService{
		client: client,
		model:  anthropic.Model(defaultChatModelName),
	}
}

// Generate sends the system prompt and turn sequence to the model and
// returns the concatenated text of the response.
func (s *LLMService) Generate(ctx context.Context, systemPrompt string, turns []Turn, maxTokens int64, temperature float64) (string, error) {
	messages := make([]anthropic.MessageParam, 0, len(turns))
	for _, turn := range turns {
		block := anthropic.NewTextBlock(turn.Content)
		if turn.Role == store.RoleAssistant {
			messages = append(messages, anthropic.NewAssistantMessage(block))
		} else {
			messages = append(messages, anthropic.NewUserMessage(block))
		}
	}

	if len(messages) == 0 {
		return "", fmt.Errorf("no turns provided for generation")
	}

	params := anthropic.MessageNewParams{
		Model:       s.model,
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: messages,
	}

	msg, err := s.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic message request failed: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(tb.Text)
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("anthropic response contained no text content")
	}

	return text.String(), nil
}
