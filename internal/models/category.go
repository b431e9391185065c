package models

// Category is one of the fixed set of spending category labels. The label
// text is part of the output contract and must not change.
type Category string

const (
	CategoryATMWithdrawal Category = "ATM Withdrawal"
	CategoryBankTransfer  Category = "Bank Transfer"
	CategoryBankFees      Category = "Bank Fees"
	CategoryRefund        Category = "Refund"
	CategoryShopping      Category = "Shopping"
	CategoryHealth        Category = "Health"
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryBills         Category = "Bills"
	CategoryIncome        Category = "Income"
	CategoryEntertainment Category = "Entertainment"
	CategoryEducation     Category = "Education"
	CategoryLargePayment  Category = "Large Payment"
	CategoryOther         Category = "Other"
)

// AllCategories lists every category label in rule-priority order.
var AllCategories = []Category{
	CategoryATMWithdrawal,
	CategoryBankTransfer,
	CategoryBankFees,
	CategoryRefund,
	CategoryShopping,
	CategoryHealth,
	CategoryFood,
	CategoryTransport,
	CategoryBills,
	CategoryIncome,
	CategoryEntertainment,
	CategoryEducation,
	CategoryLargePayment,
	CategoryOther,
}

// IsValid reports whether c is one of the fixed category labels.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the label text.
func (c Category) String() string {
	return string(c)
}

// CategoryConfig represents a category override in the categories YAML file.
// The Name must be one of the fixed labels; unknown names are rejected at
// load time.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
