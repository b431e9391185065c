// Package categorizer maps transaction descriptions to spending category
// labels. Categorization is layered: optional keyword overrides from the
// categories YAML file, then the built-in fixed rule table, then an optional
// AI suggestion, then an amount-threshold fallback. The result is always one
// of the fixed labels; categorization never fails.
package categorizer

import (
	"context"

	"mrahman/sms-csv/internal/logging"
	"mrahman/sms-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Categorizer chains categorization strategies over the fixed fallbacks.
// With no store and no AI key configured it behaves exactly like the
// package-level Categorize function.
type Categorizer struct {
	strategies []Strategy
	threshold  decimal.Decimal
	logger     logging.Logger
}

// CategorizerOption configures a Categorizer.
type CategorizerOption func(*Categorizer)

// WithAIStrategy appends a Gemini suggestion strategy behind the built-in
// rules. No-op when the API key is empty.
func WithAIStrategy(apiKey, model string) CategorizerOption {
	return func(c *Categorizer) {
		if apiKey == "" {
			return
		}
		c.strategies = append(c.strategies, NewAIStrategy(apiKey, model, c.logger))
	}
}

// WithLargePaymentThreshold overrides the default Large Payment threshold.
func WithLargePaymentThreshold(threshold decimal.Decimal) CategorizerOption {
	return func(c *Categorizer) {
		if threshold.IsPositive() {
			c.threshold = threshold
		}
	}
}

// NewCategorizer builds the strategy chain. A nil store skips the keyword
// override strategy.
func NewCategorizer(store CategoryStore, logger logging.Logger, opts ...CategorizerOption) *Categorizer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	c := &Categorizer{
		threshold: DefaultLargePaymentThreshold,
		logger:    logger,
	}
	if store != nil {
		c.strategies = append(c.strategies, NewKeywordStrategy(store, logger))
	}
	c.strategies = append(c.strategies, &RuleStrategy{})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Categorize returns exactly one label from the fixed category set. Strategy
// errors are logged and skipped; when every strategy misses, the amount
// threshold and Other fallbacks decide.
func (c *Categorizer) Categorize(ctx context.Context, description string, amount decimal.Decimal) models.Category {
	for _, strategy := range c.strategies {
		category, found, err := strategy.Categorize(ctx, description, amount)
		if err != nil {
			c.logger.WithError(err).WithField("strategy", strategy.Name()).Warn("Categorization strategy failed, trying next")
			continue
		}
		if found {
			return category
		}
	}

	if amount.GreaterThan(c.threshold) {
		return models.CategoryLargePayment
	}
	return models.CategoryOther
}

// Func returns a plain categorize callback bound to ctx, for callers that
// take a function rather than the full Categorizer.
func (c *Categorizer) Func(ctx context.Context) func(description string, amount decimal.Decimal) models.Category {
	return func(description string, amount decimal.Decimal) models.Category {
		return c.Categorize(ctx, description, amount)
	}
}
