package categorizer

import (
	"regexp"
	"strings"

	"mrahman/sms-csv/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultLargePaymentThreshold is the amount above which an otherwise
// unmatched description is labeled Large Payment.
var DefaultLargePaymentThreshold = decimal.NewFromInt(10000)

// rule maps keywords (case-insensitive substrings) or a regex to a category.
// The table order is the fixed priority order: the first matching rule wins.
type rule struct {
	keywords []string
	pattern  *regexp.Regexp
	category models.Category
}

var rules = []rule{
	{keywords: []string{"atm withdrawal", "withdrawn", "atm"}, category: models.CategoryATMWithdrawal},
	{keywords: []string{"beftn", "transfer", "inward credit"}, category: models.CategoryBankTransfer},
	{keywords: []string{"charge", "fee", "npsb charge"}, category: models.CategoryBankFees},
	{keywords: []string{"reversal", "reversed"}, category: models.CategoryRefund},
	{pattern: regexp.MustCompile(`(?i)jeweller|jewelry|gold`), category: models.CategoryShopping},
	{keywords: []string{"pharma", "pharmacy", "medicine", "medical"}, category: models.CategoryHealth},
	{keywords: []string{"restaurant", "cafe", "food", "pizza", "burger", "kfc", "domino", "starbucks", "coffee", "dining"}, category: models.CategoryFood},
	{keywords: []string{"uber", "pathao", "taxi", "transport", "fuel", "petrol", "gas"}, category: models.CategoryTransport},
	{keywords: []string{"shop", "store", "market", "mall", "purchase", "retail", "bazar", "daraz"}, category: models.CategoryShopping},
	{keywords: []string{"bill", "utility", "electric", "internet", "phone", "mobile", "recharge"}, category: models.CategoryBills},
	{keywords: []string{"salary", "income", "payment", "bonus", "allowance"}, category: models.CategoryIncome},
	{keywords: []string{"entertainment", "movie", "game", "fun", "ticket"}, category: models.CategoryEntertainment},
	{keywords: []string{"education", "school", "college", "course", "book"}, category: models.CategoryEducation},
}

// matchRules runs the fixed rule table against a description. Returns false
// when no rule matched.
func matchRules(description string) (models.Category, bool) {
	lower := strings.ToLower(description)
	for _, r := range rules {
		if r.pattern != nil {
			if r.pattern.MatchString(description) {
				return r.category, true
			}
			continue
		}
		for _, keyword := range r.keywords {
			if strings.Contains(lower, keyword) {
				return r.category, true
			}
		}
	}
	return "", false
}

// Categorize maps a description and amount to exactly one label from the
// fixed category set. It is total: an unrecognized description resolves to
// Large Payment when the amount exceeds the default threshold, else Other.
// Callers without an amount pass decimal.Zero.
func Categorize(description string, amount decimal.Decimal) models.Category {
	if category, ok := matchRules(description); ok {
		return category
	}
	if amount.GreaterThan(DefaultLargePaymentThreshold) {
		return models.CategoryLargePayment
	}
	return models.CategoryOther
}
