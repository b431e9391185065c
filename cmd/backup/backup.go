// Package backup implements the backup command: Android SMS backup XML in,
// categorized transaction CSV out.
package backup

import (
	"context"
	"fmt"
	"os"

	"mrahman/sms-csv/cmd/root"
	"mrahman/sms-csv/internal/backupparser"
	"mrahman/sms-csv/internal/common"

	"github.com/spf13/cobra"
)

var (
	sender    string
	startDate string
)

// Cmd is the backup command.
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "Convert an SMS backup XML export to categorized CSV transactions",
	Long: `Backup reads an Android SMS backup XML file, runs every message body
through the extractor and writes the recognizable bank transactions as CSV.
Duplicate messages are dropped; --sender and --from narrow the input.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&sender, "sender", "s", "", "Only parse messages from this sender address")
	Cmd.Flags().StringVarP(&startDate, "from", "f", "", "Only parse messages on or after this date (YYYY-MM-DD)")
}

func run(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("--input is required")
	}

	if root.SharedFlags.Validate {
		if err := backupparser.ValidateFormat(root.SharedFlags.Input); err != nil {
			return err
		}
	}

	ctx := context.Background()
	cat := root.NewCategorizer()
	parser := backupparser.New(root.NewExtractor(), cat.Func(ctx), root.Logger())

	filterSender := sender
	if filterSender == "" {
		filterSender = root.Cfg.Backup.DefaultSender
	}

	transactions, err := parser.ParseFile(root.SharedFlags.Input, backupparser.Filter{
		Sender:    filterSender,
		StartDate: startDate,
	})
	if err != nil {
		return err
	}

	if root.SharedFlags.Output != "" {
		return common.WriteTransactionsToCSV(transactions, root.SharedFlags.Output)
	}
	return common.WriteTransactions(transactions, os.Stdout)
}
