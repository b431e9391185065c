package categorizer

import (
	"context"

	"mrahman/sms-csv/internal/models"

	"github.com/shopspring/decimal"
)

// Strategy defines one method of categorizing a transaction description.
// Strategies are tried in order; the first one that reports found wins.
type Strategy interface {
	// Categorize attempts to categorize a description. Returns the category,
	// whether the strategy produced a result, and any error encountered.
	// A strategy error never aborts the chain; the caller falls through to
	// the next strategy.
	Categorize(ctx context.Context, description string, amount decimal.Decimal) (models.Category, bool, error)

	// Name returns the strategy name for logging and debugging.
	Name() string
}

// CategoryStore provides access to persisted category keyword overrides.
type CategoryStore interface {
	LoadCategories() ([]models.CategoryConfig, error)
}

// RuleStrategy applies the built-in fixed rule table.
type RuleStrategy struct{}

// Name returns the name of this strategy.
func (s *RuleStrategy) Name() string { return "Rule" }

// Categorize runs the fixed rule table. The amount fallback is not applied
// here; it belongs to the orchestrator so that later strategies still get a
// chance at unmatched descriptions.
func (s *RuleStrategy) Categorize(_ context.Context, description string, _ decimal.Decimal) (models.Category, bool, error) {
	category, found := matchRules(description)
	return category, found, nil
}
