package llm

import (
	"context"
	"strings"

	"fervo/internal/pkg/errs"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
)

const feedbackPrompt = `You summarize guest feedback for a nightlife venue.
Event: %EVENT%

Write a short summary (at most five sentences) for the venue owner covering what guests liked,
what they complained about and one concrete suggestion. Do not quote guests by name.

Guest comments:
%COMMENTS%`

type GenkitSummarizer struct {
	g *genkit.Genkit
}

func NewGenkitSummarizer(ctx context.Context, apiKey, model string) *GenkitSummarizer {
	g := genkit.Init(ctx,
		genkit.WithPlugins(&googlegenai.GoogleAI{APIKey: apiKey}),
		genkit.WithDefaultModel(model),
	)
	return &GenkitSummarizer{g: g}
}

func (s *GenkitSummarizer) Summarize(ctx context.Context, eventName string, comments []string) (string, error) {
	text, err := genkit.GenerateText(ctx, s.g, ai.WithPrompt(BuildPrompt(eventName, comments)))
	if err != nil {
		return "", errs.WrapAs(err, "generate feedback summary", errs.ErrIntegrationFailed)
	}
	return strings.TrimSpace(text), nil
}

// BuildPrompt renders the single feedback template.
func BuildPrompt(eventName string, comments []string) string {
	var b strings.Builder
	for _, c := range comments {
		b.WriteString("- ")
		b.WriteString(strings.ReplaceAll(strings.TrimSpace(c), "\n", " "))
		b.WriteString("\n")
	}
	return strings.NewReplacer("%EVENT%", eventName, "%COMMENTS%", b.String()).Replace(feedbackPrompt)
}

type Disabled struct{}

func (Disabled) Summarize(context.Context, string, []string) (string, error) {
	return "", errs.ErrIntegrationDisabled
}
