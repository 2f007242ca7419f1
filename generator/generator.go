package generator

import (
	"io"
	"sort"

	"github.com/dennwc/go-doxy"
	"github.com/dennwc/go-doxy/xmlindex"
)

func NewGenerator() *Generator {
	return &Generator{
		classes: make(map[refid]*ClassDef),
		byName:  make(map[string]*ClassDef),
	}
}

type refid = string

// Generator collects Objective-C class definitions and emits typed class
// handle accessors for them.
type Generator struct {
	classes map[refid]*ClassDef
	byName  map[string]*ClassDef
}

// LoadDoxygen loads class and interface compounds from a folder with
// Doxygen XML files.
func (g *Generator) LoadDoxygen(dir string) error {
	idx, err := doxy.OpenXML(dir)
	if err != nil {
		return err
	}
	for _, ent := range idx.Entries() {
		switch ent.Kind {
		case xmlindex.CompoundKindClass,
			xmlindex.CompoundKindInterface:
			if err := g.loadDoxyClass(ent); err != nil {
				return err
			}
		default:
			// structs, unions, files - nothing to emit handles for
		}
	}
	return nil
}

// AddClass registers a class by name only, without position information.
// Used for manifest entries that have no Doxygen documentation.
func (g *Generator) AddClass(name string) *ClassDef {
	if c := g.byName[name]; c != nil {
		return c
	}
	c := &ClassDef{BaseNode: BaseNode{Name: name}}
	g.byName[name] = c
	return c
}

func (g *Generator) ClassByName(name string) *ClassDef {
	return g.byName[name]
}

// Classes returns all known classes sorted by name.
func (g *Generator) Classes() []*ClassDef {
	out := make([]*ClassDef, 0, len(g.byName))
	for _, c := range g.byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// PrintGo emits accessors for all known classes, sorted by name.
func (g *Generator) PrintGo(w io.Writer) bool {
	ok := true
	for _, c := range g.Classes() {
		if !c.PrintGoAccessors(w) {
			ok = false
		}
	}
	return ok
}
