// Package claude adapts the Anthropic Messages API to vision.Analyzer.
//
// The HTTP layer currently short-circuits the claude provider to 503 before
// this adapter is ever reached; it is kept complete and tested so re-enabling
// the provider is a transport-level change only.
package claude

import (
	"context"
	"errors"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

// maxTokens leaves headroom for the verbose schema: a fully populated
// finalListing with an eBay description runs well past 1k tokens.
const maxTokens = 4096

type Analyzer struct {
	client *anthropic.Client
	model  string
}

func NewAnalyzer(apiKey, model string, opts ...anthropic.ClientOption) *Analyzer {
	return &Analyzer{
		client: anthropic.NewClient(apiKey, opts...),
		model:  model,
	}
}

func (a *Analyzer) Analyze(ctx context.Context, instruction string, images [][]byte) (string, error) {
	if len(images) == 0 {
		return "", errors.New("no images provided")
	}

	content := make([]anthropic.MessageContent, 0, len(images)+1)
	for _, img := range images {
		content = append(content, anthropic.NewImageMessageContent(
			anthropic.NewMessageContentSource(anthropic.MessagesContentSourceTypeBase64, "image/jpeg", img),
		))
	}
	content = append(content, anthropic.NewTextMessageContent(instruction))

	resp, err := a.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			{Role: anthropic.RoleUser, Content: content},
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages call: %w", err)
	}

	text := resp.GetFirstContentText()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}
