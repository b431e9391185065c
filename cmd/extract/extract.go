// Package extract implements the extract command: raw bank SMS text in,
// categorized transaction records out.
package extract

import (
	"context"
	"fmt"
	"os"

	"mrahman/sms-csv/cmd/root"
	"mrahman/sms-csv/internal/common"
	"mrahman/sms-csv/internal/models"
	"mrahman/sms-csv/internal/smsparser"

	"github.com/spf13/cobra"
)

var message string

// Cmd is the extract command.
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract transactions from raw bank SMS text",
	Long: `Extract parses bank SMS notification text into structured,
categorized transaction records. Pass a single message with --message or a
text file with one message per line with --input. Records go to --output as
CSV, or to stdout.`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&message, "message", "m", "", "A single raw message to extract")
}

func run(cmd *cobra.Command, args []string) error {
	if message == "" && root.SharedFlags.Input == "" {
		return fmt.Errorf("either --message or --input is required")
	}

	ctx := context.Background()
	cat := root.NewCategorizer()
	extractor := root.NewExtractor()
	parser := smsparser.NewParser(extractor, cat.Func(ctx), root.Logger())

	var transactions []models.Transaction
	if message != "" {
		parsed := extractor.Extract(message)
		if parsed == nil {
			return fmt.Errorf("message not recognizable as a transaction")
		}
		category := cat.Categorize(ctx, parsed.Description, parsed.Amount)
		transactions = []models.Transaction{
			models.NewTransaction(parsed, category, parsed.Timestamp, models.SourceSMS),
		}
	} else {
		file, err := os.Open(root.SharedFlags.Input) // #nosec G304 -- user-supplied input path
		if err != nil {
			return fmt.Errorf("error opening input file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()

		transactions, err = parser.Parse(file)
		if err != nil {
			return err
		}
	}

	if root.SharedFlags.Output != "" {
		return common.WriteTransactionsToCSV(transactions, root.SharedFlags.Output)
	}
	return common.WriteTransactions(transactions, os.Stdout)
}
