package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dennwc/go-metaclass/objc"
)

type classRow struct {
	Name         string  `json:"name"`
	Superclass   string  `json:"superclass,omitempty"`
	InstanceSize uintptr `json:"instance_size"`
	MetaClass    string  `json:"metaclass"`
	MetaSize     uintptr `json:"metaclass_size"`
}

func newClassRow(c *objc.Class) classRow {
	r := classRow{
		Name:         c.Name(),
		InstanceSize: c.GetInstanceSize(),
	}
	if s := c.GetSuperclass(); s != nil {
		r.Superclass = s.Name()
	}
	if m := c.GetMetaClass(); m != nil {
		r.MetaClass = m.Name()
		r.MetaSize = m.GetInstanceSize()
	}
	return r
}

func render(w io.Writer, rows []classRow, format string) error {
	switch format {
	case "json":
		return renderJSON(w, rows)
	case "table":
		return renderTable(w, rows)
	default:
		return fmt.Errorf("unknown format: %q", format)
	}
}

func renderJSON(w io.Writer, rows []classRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func renderTable(w io.Writer, rows []classRow) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 classes)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Class", "Superclass", "Size", "Metaclass", "Meta Size"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.Name, r.Superclass, r.InstanceSize, r.MetaClass, r.MetaSize})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d classes)\n", len(rows))
	return nil
}
