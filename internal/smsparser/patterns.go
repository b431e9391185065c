package smsparser

import (
	"regexp"
)

// Each field is resolved by an ordered list of candidate patterns; the first
// candidate that matches and passes the field's validity check wins and later
// candidates are never tried. The tables are immutable configuration data.

// Vocabulary that resolves the transaction kind. The credit vocabulary is
// checked first; a message matching neither is not a transaction.
var (
	creditKeywords = []string{"credited", "credit", "deposit", "inward credit", "reversed"}
	debitKeywords  = []string{"debited", "debit", "charged", "withdrawn"}
)

// amountGroup matches a digit group with optional thousands separators and an
// optional 1-2 digit fraction. Separators are anchored on digits/commas only,
// so Western and South Asian grouping both match.
const amountGroup = `([\d,]+(?:\.\d{1,2})?)`

var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)BDT\s*` + amountGroup),
	regexp.MustCompile(`(?i)charged for BDT\s*` + amountGroup),
	regexp.MustCompile(`(?i)` + amountGroup + `\s*withdrawn`),
	regexp.MustCompile(`(?i)amount:\s*BDT\s*` + amountGroup),
}

var accountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)A/C\s*\(\*+(\d+)\)`),
	regexp.MustCompile(`(?i)Card#\s*(\d+)`),
	regexp.MustCompile(`(?i)account\D*(\d{4})`),
}

var balancePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Avl Bal:\s*BDT\s*` + amountGroup),
	regexp.MustCompile(`(?i)Avl Bal:\s*` + amountGroup),
	regexp.MustCompile(`(?i)Available Balance:\s*BDT\s*` + amountGroup),
	regexp.MustCompile(`(?i)Balance:\s*BDT\s*` + amountGroup),
}

// The third timestamp candidate captures date and time as one combined
// string when it wins.
var timestampPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)@\s*(\d{1,2}:\d{2}\s*[AP]M)`),
	regexp.MustCompile(`(?i)\bat\s+(\d{1,2}:\d{2}\s*[AP]M)`),
	regexp.MustCompile(`(?i)\bon\s+(\d{2}/\d{2}/\d{2}\s+\d{2}:\d{2})`),
}

var referencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)For query:\s*(\d+)`),
	regexp.MustCompile(`(?i)CL\s*ID:\s*(\d+)`),
	regexp.MustCompile(`(?i)\bRef:\s*([A-Za-z0-9]+)`),
}

// merchantPattern extracts a merchant name from "at <merchant> on <dd/mm/yy>"
// clauses. Merchant text is limited to letters, spaces and parentheses.
var merchantPattern = regexp.MustCompile(`(?i)\bat\s+([A-Za-z][A-Za-z\s()]*?)\s+on\s+\d{2}/\d{2}/\d{2}`)

// descriptionRule resolves the description field. Exactly one of pattern,
// anyOf or allOf is set. The rule order is part of the output contract:
// overlapping messages (say, "reversed" together with an ATM keyword) are
// resolved by this ordering alone.
type descriptionRule struct {
	pattern *regexp.Regexp // captures the description text when set
	anyOf   []string       // lower-case substrings, any one matches
	allOf   []string       // lower-case substrings, all must match
	label   string         // fixed description when anyOf/allOf is used
}

var descriptionRules = []descriptionRule{
	{pattern: merchantPattern},
	{anyOf: []string{"ucbl atm", "npsb atm"}, label: "ATM Withdrawal"},
	{anyOf: []string{"beftn inward credit"}, label: "Bank Transfer (Received)"},
	{allOf: []string{"i banking", "transfer"}, label: "Online Transfer"},
	{anyOf: []string{"fund transfer"}, label: "Online Transfer"},
	{anyOf: []string{"npsb charge"}, label: "Bank Service Charge"},
	{anyOf: []string{"reversed"}, label: "Transaction Reversal"},
}

// Kind-based defaults applied when no description rule matches.
const (
	defaultDebitDescription  = "Bank Debit"
	defaultCreditDescription = "Bank Credit"
)
