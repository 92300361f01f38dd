package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Summarizer produces an informative bullet summary from a transcript. It is
// the fallback used when the transcription service returns no summary of its
// own. The client is stateless and shared by all pipeline runs.
type Summarizer struct {
	client *openai.Client
}

// NewSummarizer creates a Summarizer backed by the OpenAI API.
func NewSummarizer(apiKey string) *Summarizer {
	return &Summarizer{client: openai.NewClient(apiKey)}
}

// NewSummarizerWithConfig creates a Summarizer with a custom client
// configuration (test servers, proxies).
func NewSummarizerWithConfig(cfg openai.ClientConfig) *Summarizer {
	return &Summarizer{client: openai.NewClientWithConfig(cfg)}
}

const systemPrompt = `You summarize video transcripts. Produce an informative summary as plain bullet points, one per line, each starting with "- ". Cover only what the transcript actually says. No preamble, no markdown headers.`

// Summarize returns a bullet-point summary of the transcript.
func (s *Summarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	log.Printf("[Summarizer] Generating fallback summary for transcript of %d chars", len(transcript))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: transcript,
			},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("OpenAI returned an empty summary")
	}

	log.Printf("[Summarizer] Summary generated: %d chars (tokens: %d)", len(summary), resp.Usage.TotalTokens)
	return summary, nil
}
