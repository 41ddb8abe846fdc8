package llmprovider

import (
	"context"
	"errors"

	"hiring-orchestrator/pkg/gemini"
)

// geminiClient is what the adapter needs from *gemini.Client.
type geminiClient interface {
	GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error)
	Model() string
}

var _ geminiClient = (*gemini.Client)(nil)

// GeminiAdapter maps Provider requests onto a Gemini client and turns its
// 429 errors into RateLimitError.
type GeminiAdapter struct {
	client geminiClient
}

func NewGeminiAdapter(client geminiClient) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]gemini.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = gemini.Message{Role: m.Role, Text: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) && apiErr.RateLimited() {
			return nil, &RateLimitError{Provider: a.Name(), RetryAfter: apiErr.RetryAfter, Err: err}
		}
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
