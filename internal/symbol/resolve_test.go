package symbol

import (
	"testing"

	"github.com/kr/pretty"
)

func names(list []Symbol) []string {
	var out []string
	for _, s := range list {
		out = append(out, s.Name())
	}
	return out
}

// chain 创建 root <- A <- B <- C
func chain(f *Factory) (root, a, b, c Symbol) {
	root = f.CreateMeaningSlot("Root")
	a = f.CreateMeaningSlot("A")
	b = f.CreateMeaningSlot("B")
	c = f.CreateMeaningSlot("C")
	a.SetInherits(root)
	b.SetInherits(a)
	c.SetInherits(b)
	return
}

func TestAscendingMeaningList(t *testing.T) {
	f := NewFactory()
	root, _, _, c := chain(f)

	tests := []struct {
		name string
		m    Symbol
		want []string
	}{
		{"leaf", c, []string{"Root", "A", "B", "C"}},
		{"root", root, []string{"Root"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AscendingMeaningList(tt.m)
			if diff := pretty.Diff(names(got), tt.want); len(diff) > 0 {
				t.Errorf("ascending diff: %v", diff)
			}
			if got[len(got)-1] != tt.m {
				t.Error("last element must be the meaning itself")
			}
		})
	}
}

func TestAscendingMeaningListCyclePanics(t *testing.T) {
	f := NewFactory()
	a := f.CreateMeaningSlot("A")
	b := f.CreateMeaningSlot("B")
	a.SetInherits(b)
	b.SetInherits(a)
	mustPanic(t, "cycle", func() { AscendingMeaningList(a) })
}

func TestLookup(t *testing.T) {
	f := NewFactory()
	root, a, _, c := chain(f)
	m := f.CreateMethodSlot("Area", a, "")
	a.Methods().Set("Area", m)
	x := f.CreateFieldSlot(false, "x", "int", "0")
	root.Fields().Set("x", x)

	got, ok := LookupMethod(c, "Area")
	if !ok || got != m {
		t.Errorf("LookupMethod = %v, %v", got, ok)
	}
	if _, ok := LookupMethod(root, "Area"); ok {
		t.Error("root must not see a descendant's method")
	}
	fld, owner, ok := LookupField(c, "x")
	if !ok || fld != x || owner != root {
		t.Errorf("LookupField = %v, %v, %v", fld, owner, ok)
	}
	if IndexOf(AscendingMeaningList(c), a) != 1 {
		t.Error("A must be at index 1")
	}
}
