package reasoning

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"hiring-orchestrator/pkg/llmprovider"
)

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

func (s *implService) GenerateText(ctx context.Context, prompt, systemPrompt string, history []Turn) (string, error) {
	return s.generate(ctx, prompt, systemPrompt, history, s.cfg.Temperature)
}

func (s *implService) generate(ctx context.Context, prompt, systemPrompt string, history []Turn, temperature float64) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}

	if len(history) > s.cfg.HistoryWindow {
		history = history[len(history)-s.cfg.HistoryWindow:]
	}

	msgs := make([]llmprovider.Message, 0, len(history)+1)
	for _, t := range history {
		role := llmprovider.RoleUser
		if t.Role == llmprovider.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		msgs = append(msgs, llmprovider.Message{Role: role, Content: t.Content})
	}
	msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Content: prompt})

	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	resp, err := s.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemPrompt,
		Messages:          msgs,
		Temperature:       temperature,
		MaxTokens:         s.cfg.MaxTokens,
	})
	if err != nil {
		s.l.Warnf(ctx, "%s: upstream call failed: %v", LogPrefixGenerateText, err)
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	return resp.Text, nil
}

func (s *implService) GenerateStructured(ctx context.Context, prompt string, schema any, systemPrompt string, out any) error {
	return s.generateStructured(ctx, prompt, schema, systemPrompt, s.cfg.Temperature, out)
}

func (s *implService) generateStructured(ctx context.Context, prompt string, schema any, systemPrompt string, temperature float64, out any) error {
	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: marshal schema: %w", LogPrefixGenerateStructured, err)
	}

	text, err := s.generate(ctx, prompt+fmt.Sprintf(PromptStructuredSuffix, schemaJSON), systemPrompt, nil, temperature)
	if err != nil {
		return err
	}

	if err := DecodeJSON(text, out); err != nil {
		s.l.Warnf(ctx, "%s: %v: %s", LogPrefixGenerateStructured, err, truncate(text, maxLoggedResponse))
		return err
	}
	return nil
}

// DecodeJSON strips markdown code fences from text and decodes it into out. If
// the whole text is not valid JSON it retries with the outermost {...} span.
func DecodeJSON(text string, out any) error {
	text = StripCodeFence(text)

	firstErr := json.Unmarshal([]byte(text), out)
	if firstErr == nil {
		return nil
	}

	if span := jsonObjectPattern.FindString(text); span != "" {
		if err := json.Unmarshal([]byte(span), out); err == nil {
			return nil
		}
	}

	return fmt.Errorf("%w: %v", ErrUnparseable, firstErr)
}

// StripCodeFence removes a surrounding ```json or ``` fence.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
