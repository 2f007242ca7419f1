package objc

import (
	"sync"
	"testing"
)

// rootClass returns whichever root class the runtime registers
// (NSObject on Apple platforms, Object on GNUstep).
func rootClass(t testing.TB) *Class {
	t.Helper()
	for _, name := range []string{"NSObject", "Object"} {
		if c := GetClass(name); c != nil {
			return c
		}
	}
	t.Fatal("no root class registered")
	return nil
}

func TestGetMetaClass(t *testing.T) {
	c := rootClass(t)
	m := c.GetMetaClass()
	if !m.Valid() {
		t.Fatal("failed to get metaclass")
	}
	if !m.IsMetaClass() {
		t.Errorf("%v is not a metaclass", m)
	}
	if name := m.Name(); name != c.Name() {
		t.Errorf("invalid metaclass name: %q", name)
	}
	if m.Equal(c) {
		t.Errorf("metaclass equals the class itself: %v", m)
	}
	if mc := (*Class)(nil).GetMetaClass(); mc != nil {
		t.Errorf("expected nil metaclass: %#v", mc)
	}
}

func TestGetMetaClassStable(t *testing.T) {
	c := rootClass(t)
	m := c.GetMetaClass()
	for i := 0; i < 10; i++ {
		if m2 := c.GetMetaClass(); !m.Equal(m2) {
			t.Fatalf("metaclass changed between calls: %v vs %v", m, m2)
		}
	}
}

func TestGetMetaClassOracle(t *testing.T) {
	c := rootClass(t)
	m := c.GetMetaClass()
	if v := c.classOfValue(); !m.Equal(v) {
		t.Errorf("disagrees with object_getClass: %v vs %v", m, v)
	}
	if v := GetMetaClass(c.Name()); !m.Equal(v) {
		t.Errorf("disagrees with objc_getMetaClass: %v vs %v", m, v)
	}
}

func TestRootMetaClass(t *testing.T) {
	c := rootClass(t)
	root := c.GetMetaClass().GetMetaClass()
	if !root.Valid() {
		t.Fatal("failed to get root metaclass")
	}
	if next := root.GetMetaClass(); !root.Equal(next) {
		t.Errorf("root metaclass is not terminal: %v -> %v", root, next)
	}
}

// TestGetMetaClassAllRegistered resolves the metaclass of every registered
// class, including ones the runtime synthesizes for internal bookkeeping.
// Those are the classes that crash the generic id-typed lookup, so the
// result must also stay usable after the call.
func TestGetMetaClassAllRegistered(t *testing.T) {
	list := ListClasses()
	if len(list) == 0 {
		t.Fatal("no classes")
	}
	for i := range list {
		c := &list[i]
		m := c.GetMetaClass()
		if !m.Valid() {
			t.Errorf("no metaclass for %q", c.Name())
			continue
		}
		if !m.IsMetaClass() {
			t.Errorf("class of %q is not a metaclass", c.Name())
		}
		_ = m.Name()
	}
}

func TestGetMetaClassConcurrent(t *testing.T) {
	c := rootClass(t)
	want := c.GetMetaClass()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if m := c.GetMetaClass(); !want.Equal(m) {
					t.Errorf("unexpected metaclass: %v", m)
					return
				}
			}
		}()
	}
	wg.Wait()
}
