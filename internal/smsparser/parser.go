package smsparser

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"mrahman/sms-csv/internal/logging"
	"mrahman/sms-csv/internal/models"

	"github.com/shopspring/decimal"
)

// DateLayout is the arrival-date format stamped onto emitted records.
const DateLayout = "2006-01-02 15:04:05"

// CategorizeFunc assigns a category label to a resolved description and
// amount. It must be total.
type CategorizeFunc func(description string, amount decimal.Decimal) models.Category

// Parser reads raw messages, one per line, and turns the recognizable ones
// into finished transaction records.
type Parser struct {
	extractor  *Extractor
	categorize CategorizeFunc
	logger     logging.Logger
	now        func() time.Time
}

// NewParser creates a line-oriented message parser. Unrecognized lines are
// skipped, not errors.
func NewParser(extractor *Extractor, categorize CategorizeFunc, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{
		extractor:  extractor,
		categorize: categorize,
		logger:     logger,
		now:        time.Now,
	}
}

// Parse reads messages from r, one message per line. Blank lines are ignored
// and lines that do not extract are counted and skipped. The only error
// condition is a read failure.
func (p *Parser) Parse(r io.Reader) ([]models.Transaction, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var transactions []models.Transaction
	skipped := 0

	for scanner.Scan() {
		line := scanner.Text()
		parsed := p.extractor.Extract(line)
		if parsed == nil {
			if len(line) > 0 {
				skipped++
			}
			continue
		}

		category := p.categorize(parsed.Description, parsed.Amount)
		tx := models.NewTransaction(parsed, category, p.now().Format(DateLayout), models.SourceSMS)
		transactions = append(transactions, tx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading messages: %w", err)
	}

	p.logger.WithFields(
		logging.Field{Key: "count", Value: len(transactions)},
		logging.Field{Key: "skipped", Value: skipped},
	).Info("Parsed messages")

	return transactions, nil
}
