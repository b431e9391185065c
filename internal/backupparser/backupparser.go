// Package backupparser converts Android SMS backup XML exports into
// transaction records by running every message body through the SMS
// extractor. Deduplication and sender/date filtering happen here, outside
// the extraction core.
package backupparser

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"mrahman/sms-csv/internal/logging"
	"mrahman/sms-csv/internal/models"
	"mrahman/sms-csv/internal/parsererror"
	"mrahman/sms-csv/internal/smsparser"
	"mrahman/sms-csv/internal/xmlutils"

	"golang.org/x/net/html/charset"
)

// FilterDateLayout is the format accepted for the start-date filter.
const FilterDateLayout = "2006-01-02"

// Filter narrows which backup messages are considered.
type Filter struct {
	// Sender keeps only messages from this address when non-empty.
	Sender string
	// StartDate drops messages that arrived before this date (YYYY-MM-DD)
	// when non-empty.
	StartDate string
}

// Parser handles SMS backup parsing.
type Parser struct {
	extractor  *smsparser.Extractor
	categorize smsparser.CategorizeFunc
	logger     logging.Logger
}

// New creates a backup parser around the given extractor and categorizer.
func New(extractor *smsparser.Extractor, categorize smsparser.CategorizeFunc, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{
		extractor:  extractor,
		categorize: categorize,
		logger:     logger,
	}
}

// ValidateFormat checks that the file looks like an SMS backup document
// before committing to a full decode.
func ValidateFormat(filePath string) error {
	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		return &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "SMS backup XML",
			Msg:            err.Error(),
		}
	}

	ok, err := xmlutils.PathExists(root, "/smses/sms")
	if err != nil {
		return err
	}
	if !ok {
		return &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "SMS backup XML",
			Msg:            "no /smses/sms elements found",
		}
	}
	return nil
}

// ParseFile reads and parses an SMS backup XML file with optional filters.
func (p *Parser) ParseFile(filePath string, filter Filter) ([]models.Transaction, error) {
	file, err := os.Open(filePath) // #nosec G304 -- user-supplied input path
	if err != nil {
		return nil, fmt.Errorf("error opening backup file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return p.Parse(file, filter)
}

// Parse decodes an SMS backup document from r and converts the recognizable
// bank messages into transaction records. Backup files sometimes declare
// non-UTF-8 encodings, so the decoder is charset-aware.
func (p *Parser) Parse(r io.Reader, filter Filter) ([]models.Transaction, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var backup models.SMSBackup
	if err := decoder.Decode(&backup); err != nil {
		return nil, fmt.Errorf("error parsing backup XML: %w", err)
	}

	var startDate time.Time
	if filter.StartDate != "" {
		var err error
		startDate, err = time.Parse(FilterDateLayout, filter.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date (use YYYY-MM-DD): %w", err)
		}
	}

	var transactions []models.Transaction
	seen := make(map[string]bool)
	skipped := 0

	for _, sms := range backup.SMS {
		if filter.Sender != "" && sms.Address != filter.Sender {
			continue
		}

		// Backup exports frequently repeat messages; the signature keeps the
		// first occurrence only.
		signature := fmt.Sprintf("%s|%s|%s", sms.Date, sms.Address, sms.Body)
		if seen[signature] {
			continue
		}
		seen[signature] = true

		dateMs, err := strconv.ParseInt(sms.Date, 10, 64)
		if err != nil {
			p.logger.WithField("date", sms.Date).Debug("Skipping message with malformed date attribute")
			continue
		}
		arrival := time.Unix(dateMs/1000, 0)

		if !startDate.IsZero() && arrival.Before(startDate) {
			continue
		}

		parsed := p.extractor.Extract(sms.Body)
		if parsed == nil {
			skipped++
			continue
		}

		category := p.categorize(parsed.Description, parsed.Amount)
		tx := models.NewTransaction(parsed, category, arrival.Format(smsparser.DateLayout), models.SourceBackup)
		transactions = append(transactions, tx)
	}

	p.logger.WithFields(
		logging.Field{Key: "messages", Value: len(backup.SMS)},
		logging.Field{Key: "count", Value: len(transactions)},
		logging.Field{Key: "skipped", Value: skipped},
	).Info("Parsed SMS backup")

	return transactions, nil
}
