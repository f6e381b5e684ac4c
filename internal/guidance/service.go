// Package guidance turns a chat transcript into a provider request and
// returns the guide's reply.
package guidance

import (
	"context"
	"fmt"

	"github.com/anubhav/gitaguide/internal/chat"
	"github.com/anubhav/gitaguide/internal/llm"
	"github.com/anubhav/gitaguide/internal/progress"
)

// DefaultMaxTokens bounds a single reply.
const DefaultMaxTokens = 1024

// Service requests guidance from the configured provider.
type Service struct {
	provider  llm.Provider
	maxTokens int
}

// NewService creates a guidance service on top of a provider.
func NewService(provider llm.Provider) *Service {
	return &Service{
		provider:  provider,
		maxTokens: DefaultMaxTokens,
	}
}

// Guide sends the transcript with a personalized system instruction and
// returns the reply text. The transcript's leading greeting is synthesized
// locally and is not forwarded. The progress snapshot should already count
// the question being asked.
func (s *Service) Guide(ctx context.Context, transcript []chat.Message, userName string, snapshot progress.Progress) (string, error) {
	ctx = llm.WithPurpose(ctx, "guidance")

	req := llm.Request{
		System:      personalize(userName, snapshot),
		Messages:    toProviderMessages(transcript),
		MaxTokens:   s.maxTokens,
		Temperature: 0.7,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("guidance request: %w", err)
	}
	return resp.Text, nil
}

// toProviderMessages converts the transcript, dropping the local greeting.
func toProviderMessages(transcript []chat.Message) []llm.Message {
	msgs := transcript
	if len(msgs) > 0 && msgs[0].Role == chat.RoleModel {
		msgs = msgs[1:]
	}

	out := make([]llm.Message, len(msgs))
	for i, m := range msgs {
		role := llm.RoleUser
		if m.Role == chat.RoleModel {
			role = llm.RoleAssistant
		}
		out[i] = llm.Message{Role: role, Content: m.Content}
	}
	return out
}
