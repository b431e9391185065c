package categorizer

import (
	"context"
	"fmt"
	"strings"

	"mrahman/sms-csv/internal/logging"
	"mrahman/sms-csv/internal/models"

	"github.com/google/generative-ai-go/genai"
	"github.com/shopspring/decimal"
	"google.golang.org/api/option"
)

// AIStrategy suggests a category for descriptions the deterministic rules
// could not place, using the Gemini API. It is disabled unless an API key is
// configured and only ever returns labels from the fixed category set, so the
// categorizer stays total regardless of what the model answers.
type AIStrategy struct {
	apiKey string
	model  string
	logger logging.Logger

	client *genai.Client
}

// NewAIStrategy creates an AIStrategy. The client is created lazily on the
// first categorization attempt so that construction never needs the network.
func NewAIStrategy(apiKey, model string, logger logging.Logger) *AIStrategy {
	return &AIStrategy{
		apiKey: apiKey,
		model:  model,
		logger: logger,
	}
}

// Name returns the name of this strategy.
func (s *AIStrategy) Name() string { return "AI" }

// Categorize asks the model for one of the fixed labels. Any failure (no
// key, network error, off-list answer) is reported as not-found, never as a
// chain-breaking error.
func (s *AIStrategy) Categorize(ctx context.Context, description string, amount decimal.Decimal) (models.Category, bool, error) {
	if s.apiKey == "" || strings.TrimSpace(description) == "" {
		return "", false, nil
	}

	if err := s.ensureClient(ctx); err != nil {
		s.logger.WithError(err).Warn("Failed to initialize Gemini client")
		return "", false, nil
	}

	prompt := s.buildPrompt(description, amount)
	resp, err := s.client.GenerativeModel(s.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		s.logger.WithError(err).WithField("strategy", s.Name()).Warn("AI categorization failed")
		return "", false, nil
	}

	answer := extractText(resp)
	category := models.Category(strings.TrimSpace(answer))
	if !category.IsValid() {
		s.logger.WithFields(
			logging.Field{Key: "strategy", Value: s.Name()},
			logging.Field{Key: "answer", Value: answer},
		).Debug("AI returned a label outside the fixed set, ignoring")
		return "", false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: "category", Value: string(category)},
	).Debug("Description categorized using AI suggestion")
	return category, true, nil
}

func (s *AIStrategy) ensureClient(ctx context.Context) error {
	if s.client != nil {
		return nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	s.client = client
	return nil
}

func (s *AIStrategy) buildPrompt(description string, amount decimal.Decimal) string {
	labels := make([]string, len(models.AllCategories))
	for i, c := range models.AllCategories {
		labels[i] = string(c)
	}
	return fmt.Sprintf(
		"Assign the bank transaction below to exactly one of these categories and answer with the category name only.\nCategories: %s\nDescription: %s\nAmount: %s BDT",
		strings.Join(labels, ", "), description, amount.StringFixed(2))
}

// extractText flattens the first candidate's text parts.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	return builder.String()
}
