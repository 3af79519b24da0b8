package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shapegen/internal/factory"
)

var makeCount int

// kindsCmd lists the registered shape kinds
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the registered shape kinds",
	Args:  cobra.NoArgs,
	RunE:  runKinds,
}

// makeCmd creates shapes of a single kind
var makeCmd = &cobra.Command{
	Use:   "make [kind]",
	Short: "Create shapes of one kind",
	Long: `Creates shapes of the named kind through the factory and prints them.
An unregistered kind is reported and is not treated as a failure.

Example:
  shapegen make Polygon -n 3`,
	Args: cobra.ExactArgs(1),
	RunE: runMake,
}

func init() {
	makeCmd.Flags().IntVarP(&makeCount, "count", "n", 1, "Number of shapes to create")
}

// runKinds prints one registered kind per line
func runKinds(cmd *cobra.Command, args []string) error {
	d, err := newDriver()
	if err != nil {
		return err
	}
	for _, kind := range d.Kinds() {
		fmt.Fprintln(cmd.OutOrStdout(), kind)
	}
	return nil
}

// runMake creates makeCount shapes of the kind in args[0]
func runMake(cmd *cobra.Command, args []string) error {
	if makeCount < 1 {
		return fmt.Errorf("--count must be >= 1, got %d", makeCount)
	}

	f, style, err := outputOptions()
	if err != nil {
		return err
	}

	d, err := newDriver()
	if err != nil {
		return err
	}

	kind := args[0]
	r, err := d.Make(kind, makeCount)
	if errors.Is(err, factory.ErrUnknownKind) {
		logger.Debug("unknown shape kind requested", zap.String("kind", kind))
		fmt.Fprintf(cmd.OutOrStdout(), "Unknown shape kind: %s\n", kind)
		return nil
	}
	if err != nil {
		return fmt.Errorf("make %s failed: %w", kind, err)
	}

	return writeReport(cmd, r, f, style)
}
