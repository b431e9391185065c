package models

import (
	"github.com/shopspring/decimal"
)

// TransactionKind represents the direction of a parsed transaction.
type TransactionKind string

const (
	KindDebit  TransactionKind = "DBIT"
	KindCredit TransactionKind = "CRDT"
)

// ParsedTransaction is the immutable result of extracting one bank SMS
// notification. Kind and Amount are always populated; every other field
// degrades to a documented default when no pattern matched.
type ParsedTransaction struct {
	Kind    TransactionKind
	Amount  decimal.Decimal
	Balance decimal.Decimal

	// Timestamp is a time-of-day or combined date+time string taken from the
	// message. When no timestamp pattern matched it holds the extraction-time
	// wall clock and TimestampParsed is false.
	Timestamp       string
	TimestampParsed bool

	// AccountRef holds the last digits of the account or card, unmasked.
	AccountRef string

	Description string
	ReferenceID string
}

// IsDebit returns true if the transaction is a debit (outgoing money).
func (p *ParsedTransaction) IsDebit() bool {
	return p.Kind == KindDebit
}

// IsCredit returns true if the transaction is a credit (incoming money).
func (p *ParsedTransaction) IsCredit() bool {
	return p.Kind == KindCredit
}
