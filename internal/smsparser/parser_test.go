package smsparser

import (
	"strings"
	"testing"

	"mrahman/sms-csv/internal/logging"
	"mrahman/sms-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticCategorize(description string, amount decimal.Decimal) models.Category {
	return models.CategoryOther
}

func TestParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"Your A/C (***3766) has been debited BDT 3,060.00. Avl Bal: BDT 3,04,017.61 @ 07:58 PM. For query: 16419",
		"",
		"hello how are you",
		"Your A/C (***3766) has been credited BDT 60,016.06 for Beftn Inward Credit. Avl Bal: BDT 2,22,322.83 @ 07:20 PM.",
	}, "\n")

	extractor := New(&logging.MockLogger{}, WithClock(fixedClock))
	parser := NewParser(extractor, staticCategorize, &logging.MockLogger{})

	transactions, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, transactions, 2)

	assert.Equal(t, string(models.KindDebit), transactions[0].Kind)
	assert.Equal(t, "3060", transactions[0].Amount.String())
	assert.Equal(t, string(models.KindCredit), transactions[1].Kind)
	assert.Equal(t, models.SourceSMS, transactions[0].Source)
	assert.Equal(t, models.DefaultCurrency, transactions[0].Currency)
	assert.NotEmpty(t, transactions[0].ID)
	assert.NotEqual(t, transactions[0].ID, transactions[1].ID)
	assert.Equal(t, string(models.CategoryOther), transactions[0].Category)
}

func TestParser_ParseEmptyInput(t *testing.T) {
	extractor := New(&logging.MockLogger{})
	parser := NewParser(extractor, staticCategorize, &logging.MockLogger{})

	transactions, err := parser.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, transactions)
}
