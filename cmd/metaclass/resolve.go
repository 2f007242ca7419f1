package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dennwc/go-metaclass/objc"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve CLASS [CLASS...]",
	Short: "Resolve the metaclass of one or more classes by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := make([]classRow, 0, len(args))
		for _, name := range args {
			c := objc.GetClass(name)
			if c == nil {
				return fmt.Errorf("unknown class: %q", name)
			}
			r := newClassRow(c)
			slog.Debug("resolved class", "class", r.Name, "metaclass", r.MetaClass)
			rows = append(rows, r)
		}
		return render(os.Stdout, rows, outputFormat)
	},
}
