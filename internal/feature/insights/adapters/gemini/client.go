// Package gemini provides the ledger analysis client backed by the Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"expensepro_backend/internal/feature/insights/usecase"
)

const (
	// DefaultModel is the Gemini model used for ledger analysis.
	DefaultModel = "gemini-2.5-flash"

	// Low temperature and a bounded answer favor factual summaries over prose.
	temperature     = 0.3
	maxOutputTokens = 600
)

// GeminiAnalyzer generates ledger analyses using the Google Gemini API.
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

// Compile-time check that GeminiAnalyzer implements Analyzer.
var _ usecase.Analyzer = (*GeminiAnalyzer)(nil)

// NewGeminiAnalyzer creates a new GeminiAnalyzer instance. Credentials come
// from the environment (GEMINI_API_KEY, or ADC when running on Google Cloud).
func NewGeminiAnalyzer(ctx context.Context) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiAnalyzer{client: client, model: DefaultModel}, nil
}

// Analyze generates an answer for the prompt under the system instruction.
func (g *GeminiAnalyzer) Analyze(ctx context.Context, system, prompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(temperature)),
		MaxOutputTokens:   maxOutputTokens,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
