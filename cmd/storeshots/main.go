// Command storeshots renders App Store marketing screenshots: each raw
// capture is placed on the brand gradient under a headline and subtitle,
// with rounded corners and a drop shadow.
//
// Run without arguments to render the default table from raw_screenshots/
// into fastlane/screenshots/en-AU/.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/youruser/storeshots/internal/batch"
	"github.com/youruser/storeshots/internal/config"
	imagepkg "github.com/youruser/storeshots/internal/image"
	"github.com/youruser/storeshots/internal/shots"
)

var (
	configPath string
	tablePath  string
	rawDir     string
	outDir     string
	only       []string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storeshots",
	Short: "Render stylized App Store screenshots",
	Long: `storeshots composites raw app captures onto a branded gradient with a
headline, a subtitle, rounded corners and a drop shadow.

Run without arguments to render the built-in HydroMind table.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runRender,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the screenshot table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		specs, err := cfg.ResolveScreenshots()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), shots.ExportText(shots.Select(specs, only)))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "storeshots.yaml", "YAML config file (defaults apply when missing)")
	rootCmd.PersistentFlags().StringVarP(&tablePath, "table", "t", "", "CSV shot table replacing the configured screenshots")
	rootCmd.PersistentFlags().StringVar(&rawDir, "raw-dir", "", "directory holding raw captures")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out-dir", "o", "", "directory for rendered screenshots")
	rootCmd.PersistentFlags().StringSliceVar(&only, "only", nil, "render only these sources or outputs (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(listCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if tablePath != "" {
		cfg.Paths.Table = tablePath
	}
	if rawDir != "" {
		cfg.Paths.RawDir = rawDir
	}
	if outDir != "" {
		cfg.Paths.OutDir = outDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	specs, err := cfg.ResolveScreenshots()
	if err != nil {
		return err
	}
	specs = shots.Select(specs, only)
	if len(specs) == 0 {
		return fmt.Errorf("no screenshots match %v", only)
	}

	layout, err := cfg.ImageLayout()
	if err != nil {
		return err
	}
	composer, err := imagepkg.NewComposer(layout, logger)
	if err != nil {
		return err
	}
	_, err = batch.NewRunner(composer, cfg.Paths.RawDir, cfg.Paths.OutDir, logger).Run(specs)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("storeshots failed", zap.Error(err))
			_ = logger.Sync()
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
