package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shapegen/internal/config"
	"shapegen/internal/driver"
	"shapegen/internal/logging"
	"shapegen/internal/report"
)

var (
	// Global flags
	verbose    bool
	configPath string
	seed       uint64
	minShapes  int
	maxShapes  int
	format     string
	color      bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shapegen",
	Short: "shapegen - random 2D shape generator",
	Long: `shapegen registers a set of 2D shape kinds (Point, Circle, Rect, Square,
Polyline, Polygon), generates a random number of random shapes inside a
bounded field, prints a description of each and reports how many shapes
are still alive once the container holding them is cleared.

Run without arguments to perform one generation run.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGenerate,
}

// generateCmd is the explicit form of the default action
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate, print and clear a random set of shapes",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file (YAML); missing file means defaults")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed (0 = seed from the clock)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "Output format: text, yaml, json")
	rootCmd.PersistentFlags().BoolVar(&color, "color", false, "Style summary lines for a terminal")

	// Count range flags
	for _, c := range []*cobra.Command{rootCmd, generateCmd} {
		c.Flags().IntVar(&minShapes, "min", 0, "Minimum number of shapes (overrides config)")
		c.Flags().IntVar(&maxShapes, "max", 0, "Maximum number of shapes (overrides config)")
	}

	// Add commands to root
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(makeCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, loaded)
	cfg = loaded

	logger, err = newLogger(cmd, cfg.Logging)
	if err != nil {
		return err
	}
	logging.For(logger, logging.CategoryBoot).Debug("config loaded",
		zap.String("path", configPath),
		zap.Int("field_capacity", cfg.Field.Capacity),
		zap.Strings("kinds", cfg.Kinds))
	return nil
}

// newLogger writes to stderr unless the command's error stream was redirected.
func newLogger(cmd *cobra.Command, lc config.LoggingConfig) (*zap.Logger, error) {
	if w := cmd.ErrOrStderr(); w != io.Writer(os.Stderr) {
		return logging.NewWriter(w, lc, verbose)
	}
	return logging.New(lc, verbose)
}

// applyFlagOverrides copies explicitly set flags over config values.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		c.Generation.Seed = seed
	}
	if flags.Changed("min") {
		c.Generation.MinShapes = minShapes
		if !flags.Changed("max") && c.Generation.MaxShapes < minShapes {
			c.Generation.MaxShapes = minShapes
		}
	}
	if flags.Changed("max") {
		c.Generation.MaxShapes = maxShapes
	}
}

// newDriver builds a driver from the loaded config.
func newDriver() (*driver.Driver, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return driver.New(cfg, driver.WithLogger(logger))
}

// outputOptions resolves --format and --color.
func outputOptions() (report.Format, report.Style, error) {
	f, err := report.ParseFormat(format)
	if err != nil {
		return "", nil, err
	}
	style := report.Style(report.Plain)
	if color {
		style = report.ColorStyle()
	}
	return f, style, nil
}

// runGenerate performs one generation run
func runGenerate(cmd *cobra.Command, args []string) error {
	f, style, err := outputOptions()
	if err != nil {
		return err
	}

	d, err := newDriver()
	if err != nil {
		return err
	}

	r, err := d.Run()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	return writeReport(cmd, r, f, style)
}

// writeReport renders r to the command's stdout.
func writeReport(cmd *cobra.Command, r report.Report, f report.Format, style report.Style) error {
	if err := report.Write(cmd.OutOrStdout(), r, f, style); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logging.For(logger, logging.CategoryReport).Debug("report written",
		zap.String("run_id", r.RunID),
		zap.String("format", string(f)),
		zap.Int("shapes", len(r.Shapes)))
	return nil
}
