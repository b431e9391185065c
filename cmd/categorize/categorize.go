// Package categorize implements the categorize command: a description plus
// optional amount in, a category label out.
package categorize

import (
	"context"
	"fmt"

	"mrahman/sms-csv/cmd/root"
	"mrahman/sms-csv/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	description string
	amount      string
)

// Cmd is the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction description",
	Long: `Categorize maps a transaction description (and optional amount) to
one of the fixed spending category labels.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description to categorize")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Transaction amount, used for the large-payment fallback")
	_ = Cmd.MarkFlagRequired("description")
}

func run(cmd *cobra.Command, args []string) error {
	amt := decimal.Zero
	if amount != "" {
		amt = models.ParseAmount(amount)
	}

	cat := root.NewCategorizer()
	category := cat.Categorize(context.Background(), description, amt)

	fmt.Println(category)
	return nil
}
