package transpiler

import (
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/tangzhangming/meantree/internal/i18n"
	"github.com/tangzhangming/meantree/internal/symbol"
)

const chainSrc = `package chain

meaning Root {
	let z: bool;
}

meaning A: Root {
	let x: int = 7;
}

meaning B: A {}

meaning C: B {
	let ref y: []string;
}
`

// chainSymbols 构建 Root <- A <- B <- C
func chainSymbols(t *testing.T) []symbol.Symbol {
	t.Helper()
	f := symbol.NewFactory()
	t.Cleanup(f.Release)
	root := f.CreateMeaningSlot("Root")
	a := f.CreateMeaningSlot("A")
	b := f.CreateMeaningSlot("B")
	c := f.CreateMeaningSlot("C")
	a.SetInherits(root)
	b.SetInherits(a)
	c.SetInherits(b)
	return symbol.AscendingMeaningList(c)
}

func TestFieldRedefinition(t *testing.T) {
	tr, msgs := analyze(t, "meaning A {\n\tlet x: int;\n\tlet x: string;\n}\n")
	if diff := pretty.Diff(msgs, []string{i18n.T(i18n.ErrRedefining, "x")}); len(diff) > 0 {
		t.Fatalf("diagnostics diff: %v", diff)
	}
	if d := tr.diags[0]; d.Line != 3 || d.File != "test.mt" {
		t.Errorf("diagnostic at %s:%d, want test.mt:3", d.File, d.Line)
	}

	a, ok := tr.Meaning("A")
	if !ok {
		t.Fatal("meaning A not registered")
	}
	if a.Fields().Len() != 1 {
		t.Fatalf("field set has %d entries, want 1", a.Fields().Len())
	}
	x, _ := a.Fields().Get("x")
	if x.FieldType() != "int" {
		t.Errorf("first declaration must win, got type %s", x.FieldType())
	}
}

func TestFieldZeroDefault(t *testing.T) {
	tr, msgs := analyze(t, "meaning A {\n\tlet xs: []string;\n\tlet n: int = 3;\n}\n")
	if len(msgs) != 0 {
		t.Fatalf("unexpected diagnostics: %q", msgs)
	}
	a, _ := tr.Meaning("A")
	xs, _ := a.Fields().Get("xs")
	n, _ := a.Fields().Get("n")
	if xs.FieldInit() != "*new([]string)" || n.FieldInit() != "3" {
		t.Errorf("inits = %q, %q", xs.FieldInit(), n.FieldInit())
	}
}

func TestHandlePath(t *testing.T) {
	asc := chainSymbols(t)
	root, a, c := asc[0], asc[1], asc[3]

	tests := []struct {
		from, to symbol.Symbol
		want     []string
	}{
		{c, a, []string{"B", "A"}},
		{c, c, []string{}},
		{c, root, []string{"B", "A", "Root"}},
		{a, root, []string{"Root"}},
	}
	for _, tt := range tests {
		got := HandlePath(asc, tt.from, tt.to)
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("HandlePath(%s, %s) diff: %v", tt.from, tt.to, diff)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("HandlePath from an ancestor to a descendant should panic")
		}
	}()
	HandlePath(asc, a, c)
}

func TestMatchFieldSteps(t *testing.T) {
	asc := chainSymbols(t)
	for k := range asc {
		got := MatchField(asc[:k+1], 0, "l", "f")
		if steps := strings.Count(got, ".variant.("); steps != k {
			t.Errorf("field at depth %d takes %d steps: %s", k, steps, got)
		}
		if !strings.HasSuffix(got, ".f") {
			t.Errorf("MatchField = %s, want selector f", got)
		}
	}

	want := "l.variant.(layerRootToA).next.variant.(layerAToB).next.f"
	if got := MatchField(asc[:3], 0, "l", "f"); got != want {
		t.Errorf("MatchField = %s, want %s", got, want)
	}
}

func TestGeneratedAccessors(t *testing.T) {
	out, f := generate(t, chainSrc)
	fns := funcs(f)

	for _, want := range []string{
		"return self.root.Get().z.Get()",
		"return self.Root.root.Get().variant.(layerRootToA).next.x.Get()",
		"self.Root.root.Get().variant.(layerRootToA).next.x.Set(v)",
		"return self.B.A.Root.root.Get().variant.(layerRootToA).next.variant.(layerAToB).next.variant.(layerBToC).next.y.Borrow()",
		"self.B.A.Root.root.Get().variant.(layerRootToA).next.variant.(layerAToB).next.variant.(layerBToC).next.y.Replace(v)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated code lacks %q", want)
		}
	}

	// 访问器只生成在声明字段的 meaning 上，后代通过方法提升获得
	for _, name := range []string{"A.x", "A.setX", "C.y", "C.setY", "Root.z", "Root.setZ"} {
		if fns[name] == nil {
			t.Errorf("missing accessor %s", name)
		}
	}
	for _, name := range []string{"B.x", "C.x", "C.z"} {
		if fns[name] != nil {
			t.Errorf("accessor %s should not be generated", name)
		}
	}
}

func TestFieldShadowsAncestorField(t *testing.T) {
	src := "meaning A {\n\tlet x: int = 1;\n}\nmeaning B: A {\n\tlet ref x: string = \"b\";\n}\n"
	tr, msgs := analyze(t, src)
	if len(msgs) != 0 {
		t.Fatalf("unexpected diagnostics: %q", msgs)
	}
	b, _ := tr.Meaning("B")
	if x, ok := b.Fields().Get("x"); !ok || x.FieldType() != "string" {
		t.Fatalf("B.x not registered with its own type")
	}

	out, f := generate(t, src)
	fns := funcs(f)
	for _, name := range []string{"A.x", "A.setX", "B.x", "B.setX"} {
		if fns[name] == nil {
			t.Errorf("missing accessor %s", name)
		}
	}
	for _, want := range []string{
		"func (self A) x() int {\n\treturn self.root.Get().x.Get()",
		"func (self B) x() string {\n\treturn self.A.root.Get().variant.(layerAToB).next.x.Borrow()",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated code lacks %q", want)
		}
	}
}
