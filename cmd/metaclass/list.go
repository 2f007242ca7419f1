package main

import (
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dennwc/go-metaclass/objc"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered classes and their metaclasses",
	Long: `List enumerates every class registered with the runtime, including
internal ones, and resolves the metaclass of each.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		classes := objc.ListClasses()
		slog.Debug("enumerated registered classes", "count", len(classes))

		rows := make([]classRow, 0, len(classes))
		for i := range classes {
			rows = append(rows, newClassRow(&classes[i]))
		}
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Name < rows[j].Name
		})
		return render(os.Stdout, rows, outputFormat)
	},
}
