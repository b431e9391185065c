// Package root contains the root command for the application.
package root

import (
	"mrahman/sms-csv/internal/categorizer"
	"mrahman/sms-csv/internal/common"
	"mrahman/sms-csv/internal/config"
	"mrahman/sms-csv/internal/logging"
	"mrahman/sms-csv/internal/smsparser"
	"mrahman/sms-csv/internal/store"
	"mrahman/sms-csv/internal/xmlutils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands.
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "sms-csv",
		Short: "A CLI tool to convert bank SMS notifications to categorized CSV transactions.",
		Long: `sms-csv extracts structured transaction records from bank SMS
notification text and assigns each one a spending category. It reads raw
messages, line-oriented text files and Android SMS backup XML exports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to sms-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			store.SetLogger(Log)
			xmlutils.SetLogger(Log)
			common.SetLogger(Log)

			if Cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands.
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
}

// Logger returns the shared logger wrapped in the logging abstraction.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// NewExtractor builds the message extractor with the shared logger.
func NewExtractor() *smsparser.Extractor {
	return smsparser.New(Logger())
}

// NewCategorizer builds the categorizer chain from the loaded configuration.
func NewCategorizer() *categorizer.Categorizer {
	categoryStore := store.NewCategoryStore(Cfg.Categorization.CategoriesFile)
	opts := []categorizer.CategorizerOption{
		categorizer.WithLargePaymentThreshold(decimal.NewFromFloat(Cfg.Categorization.LargePaymentThreshold)),
	}
	if Cfg.AI.Enabled {
		opts = append(opts, categorizer.WithAIStrategy(Cfg.AI.APIKey, Cfg.AI.Model))
	}
	return categorizer.NewCategorizer(categoryStore, Logger(), opts...)
}
