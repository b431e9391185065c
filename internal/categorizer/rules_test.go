package categorizer

import (
	"testing"

	"mrahman/sms-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategorize_FixedRules(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    models.Category
	}{
		{name: "atm withdrawal label", description: "ATM Withdrawal", expected: models.CategoryATMWithdrawal},
		{name: "withdrawn keyword", description: "BDT withdrawn from card", expected: models.CategoryATMWithdrawal},
		{name: "beftn", description: "Beftn settlement", expected: models.CategoryBankTransfer},
		{name: "bank transfer received", description: "Bank Transfer (Received)", expected: models.CategoryBankTransfer},
		{name: "inward credit", description: "Inward Credit from employer", expected: models.CategoryBankTransfer},
		{name: "service charge", description: "Bank Service Charge", expected: models.CategoryBankFees},
		{name: "annual fee", description: "Annual card fee", expected: models.CategoryBankFees},
		{name: "reversal", description: "Transaction Reversal", expected: models.CategoryRefund},
		{name: "jeweller regex", description: "NEW SONALI JEWELLERS", expected: models.CategoryShopping},
		{name: "gold regex", description: "CITY GOLD CENTER", expected: models.CategoryShopping},
		{name: "pharmacy", description: "LAZZ PHARMA", expected: models.CategoryHealth},
		{name: "restaurant", description: "Dhaba Restaurant", expected: models.CategoryFood},
		{name: "kfc", description: "KFC Gulshan", expected: models.CategoryFood},
		{name: "pathao ride", description: "PATHAO RIDE", expected: models.CategoryTransport},
		{name: "fuel", description: "City fuel station", expected: models.CategoryTransport},
		{name: "daraz order", description: "DARAZ BD", expected: models.CategoryShopping},
		{name: "electric bill", description: "DESCO electric bill", expected: models.CategoryBills},
		{name: "mobile recharge", description: "GP mobile recharge", expected: models.CategoryBills},
		{name: "salary", description: "Monthly salary", expected: models.CategoryIncome},
		{name: "movie ticket", description: "Star Cineplex movie", expected: models.CategoryEntertainment},
		{name: "course", description: "Online course enrollment", expected: models.CategoryEducation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(tt.description, decimal.Zero))
		})
	}
}

func TestCategorize_PriorityOrder(t *testing.T) {
	// "atm" (rule 1) beats "transfer" (rule 2) when both are present.
	assert.Equal(t, models.CategoryATMWithdrawal, Categorize("ATM transfer", decimal.Zero))

	// "charge" (rule 3) beats "shop" (rule 9).
	assert.Equal(t, models.CategoryBankFees, Categorize("shop charge", decimal.Zero))
}

func TestCategorize_AmountFallback(t *testing.T) {
	tests := []struct {
		name        string
		description string
		amount      decimal.Decimal
		expected    models.Category
	}{
		{name: "large payment above threshold", description: "Bank Debit", amount: decimal.NewFromInt(10001), expected: models.CategoryLargePayment},
		{name: "threshold is exclusive", description: "Bank Debit", amount: decimal.NewFromInt(10000), expected: models.CategoryOther},
		{name: "small amount", description: "Bank Debit", amount: decimal.NewFromInt(500), expected: models.CategoryOther},
		{name: "absent amount", description: "Bank Debit", amount: decimal.Zero, expected: models.CategoryOther},
		{name: "rule match ignores amount", description: "UCBL ATM withdrawal", amount: decimal.NewFromInt(50000), expected: models.CategoryATMWithdrawal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(tt.description, tt.amount))
		})
	}
}

func TestCategorize_IsTotal(t *testing.T) {
	inputs := []string{"", "   ", "Bank Debit", "некатегоризируемое", "1234567890", "!@#$%"}
	for _, input := range inputs {
		category := Categorize(input, decimal.Zero)
		assert.True(t, category.IsValid(), "category %q for input %q is not in the fixed set", category, input)
	}
}

func TestCategorize_CaseInsensitive(t *testing.T) {
	assert.Equal(t, models.CategoryFood, Categorize("STARBUCKS DHAKA", decimal.Zero))
	assert.Equal(t, models.CategoryFood, Categorize("starbucks dhaka", decimal.Zero))
	assert.Equal(t, models.CategoryShopping, Categorize("new sonali jewellers", decimal.Zero))
}
