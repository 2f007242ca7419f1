// Command metaclass inspects the class/metaclass hierarchy of the
// Objective-C runtime the process is linked against.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// outputFormat is set by the --format flag.
	outputFormat string

	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "metaclass",
	Short: "Inspect Objective-C classes and their metaclasses",
	Long: `Metaclass resolves classes registered with the Objective-C runtime and
prints them together with their metaclass, superclass and instance sizes.
Resolution always goes through the Class-typed runtime entry point, so it is
safe to point it at runtime-internal classes as well.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lvl := slog.LevelWarn
		if verbose {
			lvl = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "table", "output format (table or json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(listCmd)
}
