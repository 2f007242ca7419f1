package generator

import (
	"fmt"
	"io"
	"strings"

	"github.com/dennwc/go-doxy"
	"github.com/dennwc/go-doxy/xmlfile"
)

type Protection string

const (
	Public = Protection("public")
)

var nameReplacer = strings.NewReplacer(
	":", "_",
	"-", "_",
)

type BaseNode struct {
	refid  string
	Name   string
	GoName string
	Prot   Protection

	Pos   *Location
	Range *LineRange
}

func (t *BaseNode) ensureGoName() bool {
	if t.Name == "" {
		return false
	}
	if t.GoName == "" {
		t.GoName = nameReplacer.Replace(t.Name)
	}
	return true
}

func entToBaseNode(ent doxy.Entry, def xmlfile.CompounddefType) BaseNode {
	return BaseNode{
		refid: ent.Refid,
		Name:  ent.Name,
		Prot:  Protection(def.Prot),
		Pos:   asLocation(def.Location),
		Range: asLineRange(def.Location),
	}
}

// ClassDef describes a single Objective-C class known to the generator.
type ClassDef struct {
	BaseNode
}

// PrintGoAccessors emits a typed class handle accessor and a metaclass
// accessor for the class. The metaclass accessor resolves through
// Class.GetMetaClass, so generated code never goes through the id-typed
// object_getClass lookup.
func (t *ClassDef) PrintGoAccessors(w io.Writer) bool {
	if !t.ensureGoName() {
		return false
	}
	fmt.Fprintf(w, "// %s", t.Name)
	if p := t.Pos; p != nil {
		fmt.Fprintf(w, " (%s)", p)
	}
	fmt.Fprintf(w, `
func %sClass() *objc.Class {
	return objc.GetClass(%q)
}

// %sMetaClass returns the metaclass of %s.
func %sMetaClass() *objc.Class {
	return %sClass().GetMetaClass()
}

`,
		t.GoName, t.Name,

		t.GoName, t.Name,
		t.GoName, t.GoName,
	)
	return true
}

func (g *Generator) loadDoxyClass(ent doxy.Entry) error {
	typ, err := ent.Decode()
	if err != nil {
		return err
	}
	def := typ.Compounddef

	t := g.classes[ent.Refid]
	if t == nil {
		t = &ClassDef{}
		g.classes[ent.Refid] = t
	}
	t.BaseNode = entToBaseNode(ent, def)
	if t.Name != "" {
		g.byName[t.Name] = t
	}
	return nil
}
