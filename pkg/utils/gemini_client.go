package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiCompletionClient implements CompletionClientInterface on Google's
// Gemini models with a JSON response MIME type.
type GeminiCompletionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiCompletionClient(apiKey, model string) (*GeminiCompletionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiCompletionClient{client: client, model: model}, nil
}

func (c *GeminiCompletionClient) CompleteJSON(ctx context.Context, messages []ChatMessage) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.7)

	// Gemini has no message-role protocol compatible with ours; flatten the
	// window into a single prompt with role prefixes.
	var prompt strings.Builder
	for _, msg := range messages {
		fmt.Fprintf(&prompt, "[%s]\n%s\n\n", msg.Role, msg.Content)
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt.String()))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	content = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(content, "```json", ""), "```", ""))
	if !json.Valid([]byte(content)) {
		return "", errors.New("gemini: response is not valid JSON")
	}

	return content, nil
}
