// Package smsparser extracts structured transaction records from free-form
// bank SMS notification text. Extraction is all-or-nothing: a message that
// does not resolve to a kind and a strictly positive amount yields no record,
// and every other field degrades to a documented default.
package smsparser

import (
	"regexp"
	"time"

	"mrahman/sms-csv/internal/logging"
	"mrahman/sms-csv/internal/models"
	"mrahman/sms-csv/internal/textutils"

	"github.com/shopspring/decimal"
)

// TimeLayout is the wall-clock format used when no timestamp pattern matched.
const TimeLayout = "03:04 PM"

// Extractor converts raw SMS text into ParsedTransaction records. It is
// stateless apart from its logger and clock and is safe for concurrent use.
type Extractor struct {
	logger logging.Logger
	now    func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithClock replaces the wall clock used for the timestamp fallback.
// Intended for tests that need the fallback to be deterministic.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// New creates an Extractor. A nil logger falls back to a default adapter.
func New(logger logging.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	e := &Extractor{
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses a raw message into a ParsedTransaction. It returns nil when
// the message is not recognizable as a transaction, and never returns an
// error or panics: any internal matching failure is converted into the same
// nil result.
func (e *Extractor) Extract(raw string) (result *models.ParsedTransaction) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.WithField("panic", r).Error("Message extraction aborted")
			result = nil
		}
	}()

	text := textutils.Normalize(raw)
	if text == "" {
		return nil
	}

	kind, ok := resolveKind(text)
	if !ok {
		e.logger.WithField("message", snippet(text)).Debug("No credit or debit vocabulary found, skipping message")
		return nil
	}

	amount, ok := resolveAmount(text)
	if !ok {
		e.logger.WithField("message", snippet(text)).Debug("No positive amount found, skipping message")
		return nil
	}

	timestamp, timestampParsed := e.resolveTimestamp(text)

	parsed := &models.ParsedTransaction{
		Kind:            kind,
		Amount:          amount,
		Balance:         resolveBalance(text),
		Timestamp:       timestamp,
		TimestampParsed: timestampParsed,
		AccountRef:      firstMatch(accountPatterns, text),
		Description:     resolveDescription(text, kind),
		ReferenceID:     firstMatch(referencePatterns, text),
	}

	e.logger.WithFields(
		logging.Field{Key: "kind", Value: string(parsed.Kind)},
		logging.Field{Key: "amount", Value: parsed.Amount.StringFixed(2)},
		logging.Field{Key: "description", Value: parsed.Description},
	).Debug("Extracted transaction from message")

	return parsed
}

// resolveKind classifies the message direction. The credit vocabulary is
// checked before the debit vocabulary.
func resolveKind(text string) (models.TransactionKind, bool) {
	if textutils.ContainsAny(text, creditKeywords...) {
		return models.KindCredit, true
	}
	if textutils.ContainsAny(text, debitKeywords...) {
		return models.KindDebit, true
	}
	return "", false
}

// resolveAmount tries the amount candidates in order. A candidate whose
// capture does not parse to a strictly positive decimal cascades to the next.
func resolveAmount(text string) (decimal.Decimal, bool) {
	for _, pattern := range amountPatterns {
		match := pattern.FindStringSubmatch(text)
		if len(match) < 2 {
			continue
		}
		amount := models.ParseAmount(match[1])
		if amount.IsPositive() {
			return amount, true
		}
	}
	return decimal.Zero, false
}

// resolveBalance returns the available balance, or zero when no balance
// candidate matched. Absence is not a failure.
func resolveBalance(text string) decimal.Decimal {
	for _, pattern := range balancePatterns {
		match := pattern.FindStringSubmatch(text)
		if len(match) < 2 {
			continue
		}
		balance := models.ParseAmount(match[1])
		if !balance.IsZero() {
			return balance
		}
	}
	return decimal.Zero
}

// resolveTimestamp returns the first matching timestamp candidate, or the
// current wall clock when none matched. The second return value reports
// whether the value actually came out of the message.
func (e *Extractor) resolveTimestamp(text string) (string, bool) {
	if value := firstMatch(timestampPatterns, text); value != "" {
		return value, true
	}
	return e.now().Format(TimeLayout), false
}

// resolveDescription applies the ordered description rules, falling through
// to the kind-based default.
func resolveDescription(text string, kind models.TransactionKind) string {
	for _, rule := range descriptionRules {
		switch {
		case rule.pattern != nil:
			if match := rule.pattern.FindStringSubmatch(text); len(match) > 1 {
				return textutils.Normalize(match[1])
			}
		case len(rule.allOf) > 0:
			if textutils.ContainsAll(text, rule.allOf...) {
				return rule.label
			}
		case len(rule.anyOf) > 0:
			if textutils.ContainsAny(text, rule.anyOf...) {
				return rule.label
			}
		}
	}
	if kind == models.KindCredit {
		return defaultCreditDescription
	}
	return defaultDebitDescription
}

// firstMatch returns the first capture of the first matching pattern, or ""
// when no candidate matched.
func firstMatch(patterns []*regexp.Regexp, text string) string {
	for _, pattern := range patterns {
		if match := pattern.FindStringSubmatch(text); len(match) > 1 {
			return match[1]
		}
	}
	return ""
}

// snippet truncates message text for diagnostic logging.
func snippet(text string) string {
	const max = 60
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
