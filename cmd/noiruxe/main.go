package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultTimeout = 30 * time.Second

var (
	// Global flags
	verbose   bool
	ephemeral bool
	timeout   time.Duration

	cfg    Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "noiruxe",
	Short: "Translate site content and manage the portfolio from the terminal",
	Long: `noiruxe drives the portfolio libraries outside the web server.

Translations go through the same cache the site uses, persisted in a local
SQLite file. Admin commands talk to the REST backend with NOIRUXE_TOKEN.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded",
			zap.String("backend", cfg.BackendURL),
			zap.String("storage", cfg.StoragePath),
			zap.Bool("ephemeral", ephemeral),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep the translation cache in memory only")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Operation timeout")

	translateCmd.Flags().String("from", "en", "Source language")
	translateCmd.Flags().String("to", "fr", "Target language")
	translateBatchCmd.Flags().String("from", "en", "Source language")
	translateBatchCmd.Flags().String("to", "fr", "Target language")

	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatsCmd)

	langCmd.AddCommand(langGetCmd)
	langCmd.AddCommand(langSetCmd)

	adminListCmd.Flags().String("lang", "", "Display language (default: saved preference)")
	adminSaveCmd.Flags().String("id", "", "Record to edit (omit to create)")
	adminSaveCmd.Flags().StringArray("set", nil, "Field value as name=value (repeatable)")
	adminSaveCmd.Flags().StringArray("file", nil, "Upload into a file field as field=path (repeatable)")
	adminDeleteCmd.Flags().BoolP("yes", "y", false, "Delete without asking")
	adminUploadCmd.Flags().String("current", "", "Current field value to append to")
	adminCmd.AddCommand(adminListCmd)
	adminCmd.AddCommand(adminSaveCmd)
	adminCmd.AddCommand(adminDeleteCmd)
	adminCmd.AddCommand(adminUploadCmd)

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(translateBatchCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(adminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
