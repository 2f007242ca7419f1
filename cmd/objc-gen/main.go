package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dennwc/go-metaclass/generator"
)

var (
	f_xml      = flag.String("xml", "", "folder with Doxygen XML files (optional)")
	f_manifest = flag.String("manifest", "./classes.yaml", "YAML manifest with classes to generate")
	f_out      = flag.String("o", "", "output file (default: stdout)")
)

func main() {
	flag.Parse()

	w := io.Writer(os.Stdout)
	if *f_out != "" {
		f, err := os.Create(*f_out)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if err := generate(w); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(w io.Writer) error {
	m, err := generator.LoadManifest(*f_manifest)
	if err != nil {
		return err
	}
	g := generator.NewGenerator()
	if *f_xml != "" {
		if err := g.LoadDoxygen(*f_xml); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, `package %s

import (
	"github.com/dennwc/go-metaclass/objc"
)

`, m.Package)
	for _, name := range m.Classes {
		c := g.ClassByName(name)
		if c == nil {
			if *f_xml != "" {
				return fmt.Errorf("unknown class: %q", name)
			}
			c = g.AddClass(name)
		}
		if !c.PrintGoAccessors(w) {
			return fmt.Errorf("failed to generate the class %q", name)
		}
	}
	return nil
}
