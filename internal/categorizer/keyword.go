package categorizer

import (
	"context"
	"strings"

	"mrahman/sms-csv/internal/logging"
	"mrahman/sms-csv/internal/models"

	"github.com/shopspring/decimal"
)

// KeywordStrategy implements categorization using keyword overrides loaded
// from the categories YAML file. It runs before the built-in rule table so
// users can pin specific merchants to a label without rebuilding.
type KeywordStrategy struct {
	categories []models.CategoryConfig
	store      CategoryStore
	logger     logging.Logger
}

// NewKeywordStrategy creates a KeywordStrategy and loads the overrides from
// the store. A store miss is not fatal; the strategy just never matches.
func NewKeywordStrategy(store CategoryStore, logger logging.Logger) *KeywordStrategy {
	strategy := &KeywordStrategy{
		categories: []models.CategoryConfig{},
		store:      store,
		logger:     logger,
	}
	strategy.loadCategories()
	return strategy
}

// Name returns the name of this strategy.
func (s *KeywordStrategy) Name() string { return "Keyword" }

// Categorize matches the description against the configured keyword lists.
// Override names that are not part of the fixed label set were rejected at
// load time, so a hit here always yields a valid label.
func (s *KeywordStrategy) Categorize(_ context.Context, description string, _ decimal.Decimal) (models.Category, bool, error) {
	if strings.TrimSpace(description) == "" {
		return "", false, nil
	}

	lower := strings.ToLower(description)
	for _, categoryConfig := range s.categories {
		for _, keyword := range categoryConfig.Keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				s.logger.WithFields(
					logging.Field{Key: "strategy", Value: s.Name()},
					logging.Field{Key: "keyword", Value: keyword},
					logging.Field{Key: "category", Value: categoryConfig.Name},
				).Debug("Description categorized using keyword override")
				return models.Category(categoryConfig.Name), true, nil
			}
		}
	}
	return "", false, nil
}

// ReloadCategories reloads the overrides from the store. This can be called
// when the underlying YAML file has been updated.
func (s *KeywordStrategy) ReloadCategories() {
	s.loadCategories()
}

func (s *KeywordStrategy) loadCategories() {
	if s.store == nil {
		return
	}
	categories, err := s.store.LoadCategories()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load category overrides")
		return
	}

	valid := categories[:0]
	for _, c := range categories {
		if !models.Category(c.Name).IsValid() {
			s.logger.WithField("category", c.Name).Warn("Ignoring override with unknown category label")
			continue
		}
		valid = append(valid, c)
	}
	s.categories = valid
	s.logger.WithField("count", len(valid)).Debug("Loaded category overrides")
}
