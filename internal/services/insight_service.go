package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/jobook-vn/jobook-api/internal/models"
)

// InsightService optionally generates the opaque AI summary attached to a new
// application, for callers that do not supply one. The core never interprets
// the summary; it is stored and returned verbatim. Without an API key the
// service is disabled and applications are simply submitted without a
// summary.
type InsightService struct {
	client llms.Model
}

func NewInsightService(ctx context.Context, apiKey string) *InsightService {
	if apiKey == "" {
		return &InsightService{}
	}
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		log.Warn().Err(err).Msg("insight service disabled: failed to create Gemini client")
		return &InsightService{}
	}
	return &InsightService{client: llm}
}

func (s *InsightService) Enabled() bool {
	return s != nil && s.client != nil
}

const summaryPrompt = `You are screening a job application. Based on the posting and the CV title below, write 3 to 5 short bullet points on how well the candidate may fit. One point per line, plain text, no markdown bullets, no preamble.

Posting title: %s
Posting skills: %s
Posting description: %s

Submitted CV: %s
`

// SummarizeApplication asks the model for a few fit bullet points and returns
// them one per entry.
func (s *InsightService) SummarizeApplication(ctx context.Context, post *models.Post, cv models.CVSnapshot) ([]string, error) {
	prompt := fmt.Sprintf(summaryPrompt,
		post.Title,
		strings.Join(post.Skills, ", "),
		post.Description,
		cv.CVTitle,
	)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.client, prompt)
	if err != nil {
		return nil, err
	}

	var summary []string
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• \t"))
		if line != "" {
			summary = append(summary, line)
		}
	}
	return summary, nil
}
