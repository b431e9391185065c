// Package models provides the data structures used throughout the application.
package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Source tags recording where a transaction record came from.
const (
	SourceSMS    = "sms"
	SourceBackup = "backup"
)

// DefaultCurrency is the currency assumed for amounts in the supported
// notification formats.
const DefaultCurrency = "BDT"

// Transaction is the finished application-level record emitted to CSV.
// It is the lossless mapping of a ParsedTransaction plus its category and
// arrival metadata.
type Transaction struct {
	ID          string          `csv:"ID"`          // Record identifier (UUID)
	Date        string          `csv:"Date"`        // Arrival or message timestamp
	Kind        string          `csv:"Kind"`        // Either "DBIT" or "CRDT"
	Amount      decimal.Decimal `csv:"Amount"`      // Amount as decimal value
	Currency    string          `csv:"Currency"`    // Currency code (BDT)
	Balance     decimal.Decimal `csv:"Balance"`     // Available balance, zero if absent
	AccountRef  string          `csv:"AccountRef"`  // Last digits of account or card
	Description string          `csv:"Description"` // Merchant or transaction label
	Reference   string          `csv:"Reference"`   // Bank reference or query id
	Category    string          `csv:"Category"`    // Spending category label
	Source      string          `csv:"Source"`      // Provenance tag: sms or backup
}

// NewTransaction maps a parsed message and its category into the finished
// record shape. The date is the arrival timestamp supplied by the caller;
// the parsed in-message timestamp is kept only through the description and
// reference fields it already informed.
func NewTransaction(parsed *ParsedTransaction, category Category, date, source string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Kind:        string(parsed.Kind),
		Amount:      parsed.Amount,
		Currency:    DefaultCurrency,
		Balance:     parsed.Balance,
		AccountRef:  parsed.AccountRef,
		Description: parsed.Description,
		Reference:   parsed.ReferenceID,
		Category:    string(category),
		Source:      source,
	}
}

// IsDebit returns true if the transaction is a debit (outgoing money).
func (t *Transaction) IsDebit() bool {
	return t.Kind == string(KindDebit)
}

// IsCredit returns true if the transaction is a credit (incoming money).
func (t *Transaction) IsCredit() bool {
	return t.Kind == string(KindCredit)
}

// MarshalCSV emits the record in the standardized column order with amounts
// fixed to two decimal places.
func (t *Transaction) MarshalCSV() ([]string, error) {
	return []string{
		t.ID,
		t.Date,
		t.Kind,
		t.Amount.StringFixed(2),
		t.Currency,
		t.Balance.StringFixed(2),
		t.AccountRef,
		t.Description,
		t.Reference,
		t.Category,
		t.Source,
	}, nil
}

// UnmarshalCSV reads a record back from the standardized column order.
func (t *Transaction) UnmarshalCSV(record []string) error {
	t.ID = record[0]
	t.Date = record[1]
	t.Kind = record[2]
	var err error
	t.Amount, err = decimal.NewFromString(record[3])
	if err != nil {
		return err
	}
	t.Currency = record[4]
	t.Balance, err = decimal.NewFromString(record[5])
	if err != nil {
		return err
	}
	t.AccountRef = record[6]
	t.Description = record[7]
	t.Reference = record[8]
	t.Category = record[9]
	t.Source = record[10]
	return nil
}

// ParseAmount parses a string amount to decimal.Decimal. Thousands separators
// are stripped regardless of grouping width, so both Western ("4,300.00") and
// South Asian ("3,04,017.61") formatting parse to the same value. Returns
// decimal.Zero when the string is not a number.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", "")
	amount = strings.ReplaceAll(amount, " ", "")
	amount = strings.ReplaceAll(amount, DefaultCurrency, "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
