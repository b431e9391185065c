package smsparser

import (
	"testing"
	"time"

	"mrahman/sms-csv/internal/logging"
	"mrahman/sms-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 5, 10, 14, 30, 0, 0, time.UTC)
}

func newTestExtractor() *Extractor {
	return New(&logging.MockLogger{}, WithClock(fixedClock))
}

func TestExtract_DebitWithBalanceAndReference(t *testing.T) {
	e := newTestExtractor()

	parsed := e.Extract("Your A/C (***3766) has been debited BDT 3,060.00. Avl Bal: BDT 3,04,017.61 @ 07:58 PM. For query: 16419")
	require.NotNil(t, parsed)

	assert.Equal(t, models.KindDebit, parsed.Kind)
	assert.Equal(t, "3060", parsed.Amount.String())
	assert.Equal(t, "304017.61", parsed.Balance.String())
	assert.Equal(t, "3766", parsed.AccountRef)
	assert.Equal(t, "07:58 PM", parsed.Timestamp)
	assert.True(t, parsed.TimestampParsed)
	assert.Equal(t, "16419", parsed.ReferenceID)
	assert.Equal(t, "Bank Debit", parsed.Description)
}

func TestExtract_CardChargeWithMerchant(t *testing.T) {
	e := newTestExtractor()

	parsed := e.Extract("Your UCB Debit Card#5884 (CL ID:257015) has been charged for BDT4,300.00 at NEW SONALI JEWELLERS on 07/05/25 20:07")
	require.NotNil(t, parsed)

	assert.Equal(t, models.KindDebit, parsed.Kind)
	assert.Equal(t, "4300", parsed.Amount.String())
	assert.Equal(t, "5884", parsed.AccountRef)
	assert.Equal(t, "257015", parsed.ReferenceID)
	assert.Equal(t, "NEW SONALI JEWELLERS", parsed.Description)
}

func TestExtract_ATMWithdrawal(t *testing.T) {
	e := newTestExtractor()

	parsed := e.Extract("BDT7,000.00 withdrawn fm Card#5884 (CL ID:257015) on 08/05/25 18:33 at UCBL ATM. Avl Bal:169271.77.")
	require.NotNil(t, parsed)

	assert.Equal(t, models.KindDebit, parsed.Kind)
	assert.Equal(t, "7000", parsed.Amount.String())
	assert.Equal(t, "169271.77", parsed.Balance.String())
	assert.Equal(t, "ATM Withdrawal", parsed.Description)
	assert.Equal(t, "08/05/25 18:33", parsed.Timestamp)
	assert.True(t, parsed.TimestampParsed)
}

func TestExtract_BeftnInwardCredit(t *testing.T) {
	e := newTestExtractor()

	parsed := e.Extract("Your A/C (***3766) has been credited BDT 60,016.06 for Beftn Inward Credit. Avl Bal: BDT 2,22,322.83 @ 07:20 PM.")
	require.NotNil(t, parsed)

	assert.Equal(t, models.KindCredit, parsed.Kind)
	assert.Equal(t, "60016.06", parsed.Amount.String())
	assert.Equal(t, "222322.83", parsed.Balance.String())
	assert.Equal(t, "Bank Transfer (Received)", parsed.Description)
	assert.Equal(t, "07:20 PM", parsed.Timestamp)
}

func TestExtract_UnrecognizedMessages(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name    string
		message string
	}{
		{
			name:    "no transaction vocabulary",
			message: "hello how are you",
		},
		{
			name:    "amount not strictly positive",
			message: "Your A/C has been debited BDT 0.00",
		},
		{
			name:    "kind without amount",
			message: "Your account was debited today, thank you for banking with us",
		},
		{
			name:    "empty message",
			message: "",
		},
		{
			name:    "whitespace only",
			message: "   \n\t  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, e.Extract(tt.message))
		})
	}
}

func TestExtract_DescriptionPriorityOrder(t *testing.T) {
	e := newTestExtractor()

	// Both the ATM literal and the "withdrawn" keyword are present; without a
	// merchant-on-date clause the ATM literal rule decides.
	parsed := e.Extract("BDT500.00 withdrawn at NPSB ATM. Avl Bal:100.00")
	require.NotNil(t, parsed)
	assert.Equal(t, "ATM Withdrawal", parsed.Description)

	// A reversal keyword loses to the earlier ATM literal rule.
	parsed = e.Extract("BDT500.00 withdrawn at UCBL ATM reversed")
	require.NotNil(t, parsed)
	assert.Equal(t, "ATM Withdrawal", parsed.Description)
}

func TestExtract_DescriptionRules(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "online transfer via I Banking",
			message:  "BDT1,000.00 debited via I Banking Fund Transfer. Ref: AB12",
			expected: "Online Transfer",
		},
		{
			name:     "bank service charge",
			message:  "Your A/C has been debited BDT 23.00 for NPSB CHARGE",
			expected: "Bank Service Charge",
		},
		{
			name:     "transaction reversal",
			message:  "BDT 1,200.00 reversed to your A/C (***3766)",
			expected: "Transaction Reversal",
		},
		{
			name:     "credit default",
			message:  "Your A/C has been credited BDT 99.00",
			expected: "Bank Credit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := e.Extract(tt.message)
			require.NotNil(t, parsed)
			assert.Equal(t, tt.expected, parsed.Description)
		})
	}
}

func TestExtract_TimestampFallback(t *testing.T) {
	e := newTestExtractor()

	parsed := e.Extract("Your A/C has been debited BDT 50.00")
	require.NotNil(t, parsed)

	assert.False(t, parsed.TimestampParsed)
	assert.Equal(t, fixedClock().Format(TimeLayout), parsed.Timestamp)
}

func TestExtract_ReferencePatterns(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "query reference",
			message:  "Your A/C has been debited BDT 10.00. For query: 555",
			expected: "555",
		},
		{
			name:     "client id",
			message:  "Card#1234 charged for BDT20.00 (CL ID: 42)",
			expected: "42",
		},
		{
			name:     "alphanumeric ref",
			message:  "Your A/C has been debited BDT 10.00 Ref: TX99A",
			expected: "TX99A",
		},
		{
			name:     "no reference",
			message:  "Your A/C has been debited BDT 10.00",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := e.Extract(tt.message)
			require.NotNil(t, parsed)
			assert.Equal(t, tt.expected, parsed.ReferenceID)
		})
	}
}

func TestExtract_NormalizesEmbeddedNewlines(t *testing.T) {
	e := newTestExtractor()

	parsed := e.Extract("Your A/C (***3766)\nhas been debited\nBDT 3,060.00.\nAvl Bal: BDT 3,04,017.61")
	require.NotNil(t, parsed)

	assert.Equal(t, "3060", parsed.Amount.String())
	assert.Equal(t, "304017.61", parsed.Balance.String())
}

func TestExtract_Idempotent(t *testing.T) {
	e := newTestExtractor()
	message := "Your A/C (***3766) has been debited BDT 3,060.00. Avl Bal: BDT 3,04,017.61 @ 07:58 PM. For query: 16419"

	first := e.Extract(message)
	second := e.Extract(message)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first, second)
}

func TestExtract_CreditVocabularyWinsTie(t *testing.T) {
	e := newTestExtractor()

	// "reversed" is credit vocabulary and is checked before the debit list,
	// even though "debited" also appears.
	parsed := e.Extract("BDT 1,200.00 debited earlier has been reversed")
	require.NotNil(t, parsed)
	assert.Equal(t, models.KindCredit, parsed.Kind)
}
