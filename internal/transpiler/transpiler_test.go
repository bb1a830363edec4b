package transpiler

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/tangzhangming/meantree/internal/config"
	"github.com/tangzhangming/meantree/internal/i18n"
	mtparser "github.com/tangzhangming/meantree/internal/parser"
)

const shapes = `package shapes

import "fmt"

/// Shape is any drawable thing.
meaning Shape {
	let ref name: string = "shape";
	let area: float64;

	constructor(n string) {
		self.setName(n)
	}

	/// Describe renders the shape.
	fn Describe(prefix string) string {
		return fmt.Sprintf("%s%s", prefix, self.name())
	}
}

meaning Circle: Shape {
	let Radius: float64 = 1;

	constructor(n string, r float64) {
		super(n);
		self.SetRadius(r)
	}

	override fn Describe(prefix string) string {
		return prefix + "circle"
	}
}
`

// testConfig 返回不调用 goimports 解析依赖的配置，保证输出稳定
func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	off := false
	cfg.Output.FixImports = &off
	return cfg
}

// generate 编译 src 并把结果解析回 go/ast
func generate(t *testing.T, src string) (string, *ast.File) {
	t.Helper()
	out, err := Transpile("test.mt", src, testConfig())
	if err != nil {
		t.Fatalf("Transpile: %v", err)
	}
	f, err := parser.ParseFile(token.NewFileSet(), "test_mt.go", out, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, out)
	}
	return string(out), f
}

// analyze 只运行分析阶段，返回诊断消息
func analyze(t *testing.T, src string) (*Transpiler, []string) {
	t.Helper()
	file, errs := mtparser.ParseString("test.mt", src)
	if len(errs) > 0 {
		t.Fatalf("parse errors: %# v", pretty.Formatter(errs))
	}
	tr := New(testConfig())
	var msgs []string
	for _, d := range tr.Analyze(file) {
		msgs = append(msgs, d.Message)
	}
	return tr, msgs
}

// funcs 按名字索引生成文件中的函数和方法
func funcs(f *ast.File) map[string]*ast.FuncDecl {
	out := make(map[string]*ast.FuncDecl)
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		name := fn.Name.Name
		if fn.Recv != nil && len(fn.Recv.List) == 1 {
			if recv, ok := fn.Recv.List[0].Type.(*ast.Ident); ok {
				name = recv.Name + "." + name
			}
		}
		out[name] = fn
	}
	return out
}

func TestTranspileShapes(t *testing.T) {
	out, f := generate(t, shapes)

	if !strings.HasPrefix(out, "// Code generated by meantree from test.mt. DO NOT EDIT.") {
		t.Errorf("missing generated header:\n%s", out)
	}
	if f.Name.Name != "shapes" {
		t.Errorf("package = %s, want shapes", f.Name.Name)
	}

	var paths []string
	for _, imp := range f.Imports {
		paths = append(paths, imp.Path.Value)
	}
	want := []string{`"fmt"`, `"` + config.DefaultRuntime + `"`}
	if diff := pretty.Diff(paths, want); len(diff) > 0 {
		t.Errorf("imports diff: %v", diff)
	}

	fns := funcs(f)
	for _, name := range []string{
		"Shape.RuntimeInfo", "Shape.ToCircle", "Shape.name", "Shape.setName", "Shape.area", "Shape.setArea",
		"Shape.Describe", "Circle.Radius", "Circle.SetRadius", "Circle.overrideCircleDescribe",
		"ctorShape", "initShape", "NewShape", "ctorCircle", "initCircle", "NewCircle",
	} {
		if fns[name] == nil {
			t.Errorf("generated code has no %s", name)
		}
	}
	if fns["Circle.Describe"] != nil {
		t.Error("override must not be emitted as a method named Describe on Circle")
	}
	if !strings.Contains(out, "// Describe renders the shape.") {
		t.Error("method doc comment was dropped")
	}
	if !strings.Contains(out, "// Shape is any drawable thing.") {
		t.Error("meaning doc comment was dropped")
	}
	if !strings.Contains(out, "type Arena = meaning.Arena") {
		t.Error("arena alias missing")
	}
}

func TestTranspileUsesFileHeader(t *testing.T) {
	out, f := generate(t, "package zoo\narena Pool\nmeaning Animal {}\n")
	if f.Name.Name != "zoo" {
		t.Errorf("package = %s, want zoo", f.Name.Name)
	}
	if !strings.Contains(out, "type Pool = meaning.Arena") || !strings.Contains(out, "func NewAnimal(arena *Pool) Animal") {
		t.Errorf("arena name not applied:\n%s", out)
	}
}

func TestTranspileDefaultsFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Project.Package = "domain"
	cfg.Project.Arena = "Store"
	out, err := Transpile("x.mt", "meaning Animal {}\n", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "package domain") || !strings.Contains(string(out), "type Store = meaning.Arena") {
		t.Errorf("config defaults not applied:\n%s", out)
	}
}

func TestTranspileErrors(t *testing.T) {
	_, err := Transpile("bad.mt", "meaning {", testConfig())
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if len(perr.Diagnostics()) == 0 || perr.Diagnostics()[0].File != "bad.mt" {
		t.Errorf("diagnostics = %# v", pretty.Formatter(perr.Diagnostics()))
	}

	_, err = Transpile("bad.mt", "meaning A: Missing {}\nmeaning B: Missing {}\n", testConfig())
	var derr *DiagnosticsError
	if !errors.As(err, &derr) {
		t.Fatalf("err = %v, want *DiagnosticsError", err)
	}
	if len(derr.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(derr.Diagnostics))
	}
	if !strings.HasSuffix(err.Error(), "(and 1 more)") {
		t.Errorf("Error() = %q", err.Error())
	}
	if d := derr.Diagnostics[0]; d.Line != 1 || d.Column != 12 {
		t.Errorf("first diagnostic at %d:%d, want 1:12", d.Line, d.Column)
	}
}

func TestTranspileFormatError(t *testing.T) {
	_, err := Transpile("bad.mt", "meaning A {\n\tfn F() int { return 1 + * }\n}\n", testConfig())
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v, want *FormatError", err)
	}
	if len(ferr.Source) == 0 || ferr.Unwrap() == nil {
		t.Error("format error should carry the raw source and cause")
	}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "duplicate meaning",
			src:  "meaning A {}\nmeaning A {}\n",
			want: []string{i18n.T(i18n.ErrDuplicateMeaning, "A")},
		},
		{
			name: "unknown parent",
			src:  "meaning A: Nope {}\n",
			want: []string{i18n.T(i18n.ErrUnknownParent, "A", "Nope")},
		},
		{
			name: "inheritance cycle",
			src:  "meaning A: B {}\nmeaning B: A {}\n",
			want: []string{i18n.T(i18n.ErrInheritanceCycle, "A", "A -> B -> A")},
		},
		{
			name: "self inheritance",
			src:  "meaning A: A {}\n",
			want: []string{i18n.T(i18n.ErrInheritanceCycle, "A", "A -> A")},
		},
		{
			name: "arena conflict",
			src:  "arena A\nmeaning A {}\n",
			want: []string{i18n.T(i18n.ErrArenaConflict, "A")},
		},
		{
			name: "reserved generated name",
			src:  "meaning Shape {}\nmeaning NewShape {}\n",
			want: []string{i18n.T(i18n.ErrReservedMeaningName, "NewShape")},
		},
		{
			name: "duplicate method",
			src:  "meaning A {\n\tfn F() {}\n\tfn F() {}\n}\n",
			want: []string{i18n.T(i18n.ErrDuplicateMethod, "A", "F")},
		},
		{
			name: "inherited method without override",
			src:  "meaning A {\n\tfn F() {}\n}\nmeaning B: A {\n\tfn F() {}\n}\n",
			want: []string{i18n.T(i18n.ErrMustOverride, "B", "F", "A")},
		},
		{
			name: "override of nothing",
			src:  "meaning A {\n\toverride fn F() {}\n}\n",
			want: []string{i18n.T(i18n.ErrOverrideMissing, "A", "F")},
		},
		{
			name: "override twice",
			src:  "meaning A {\n\tfn F() {}\n}\nmeaning B: A {\n\toverride fn F() {}\n\toverride fn F() {}\n}\n",
			want: []string{i18n.T(i18n.ErrDuplicateMethod, "B", "F")},
		},
		{
			name: "method type parameters",
			src:  "meaning A {\n\tfn Map[T any](v T) {}\n}\n",
			want: []string{i18n.T(i18n.ErrMethodTypeParams, "A", "Map")},
		},
		{
			name: "unnamed parameters",
			src:  "meaning A {\n\tfn F(int) {}\n}\n",
			want: []string{i18n.T(i18n.ErrUnnamedParams, "A", "F")},
		},
		{
			name: "second constructor",
			src:  "meaning A {\n\tconstructor() {}\n\tconstructor() {}\n}\n",
			want: []string{i18n.T(i18n.ErrDuplicateCtor, "A")},
		},
		{
			name: "super without parent",
			src:  "meaning A {\n\tconstructor() { super(); }\n}\n",
			want: []string{i18n.T(i18n.ErrSuperWithoutParent, "A")},
		},
		{
			name: "missing super",
			src:  "meaning A {\n\tconstructor(n int) {}\n}\nmeaning B: A {}\n",
			want: []string{i18n.T(i18n.ErrMissingSuper, "B", "A")},
		},
		{
			name: "field shadows downcast",
			src:  "meaning A {\n\tlet ToB: int;\n}\nmeaning B: A {}\n",
			want: []string{i18n.T(i18n.ErrMemberConflict, "A", "ToB", "A")},
		},
		{
			name: "field shadows inherited method",
			src:  "meaning A {\n\tfn Size() int { return 0 }\n}\nmeaning B: A {\n\tlet Size: int;\n}\n",
			want: []string{i18n.T(i18n.ErrMemberConflict, "B", "Size", "A")},
		},
		{
			name: "method shadows embedded parent",
			src:  "meaning A {\n\tfn A() {}\n}\nmeaning B: A {}\n",
			want: []string{i18n.T(i18n.ErrMemberConflict, "B", "A", "A")},
		},
		{
			name: "method shadows inherited field",
			src:  "meaning A {\n\tlet size: int;\n}\nmeaning B: A {\n\tfn size() int { return 0 }\n}\n",
			want: []string{i18n.T(i18n.ErrMemberConflict, "B", "size", "A")},
		},
		{
			name: "override with different parameters",
			src:  "meaning A {\n\tfn M(n int) int { return n }\n}\nmeaning B: A {\n\toverride fn M(s string, k int) {}\n}\n",
			want: []string{i18n.T(i18n.ErrOverrideSignature, "B", "M", "(int) int", "A")},
		},
		{
			name: "override with different results",
			src:  "meaning A {\n\tfn M(n int) {}\n}\nmeaning B: A {\n\toverride fn M(k int) int { return k }\n}\n",
			want: []string{i18n.T(i18n.ErrOverrideSignature, "B", "M", "(int)", "A")},
		},
		{
			name: "parameter named after the runtime package",
			src:  "meaning A {\n\tfn F(meaning int) {}\n}\n",
			want: []string{i18n.T(i18n.ErrInvalidParams, "A", "F(meaning int)", errors.New(`parameter name "meaning" is reserved for the runtime package`))},
		},
		{
			name: "reserved runtime member",
			src:  "meaning A {\n\tlet root: int;\n}\n",
			want: []string{i18n.T(i18n.ErrMemberConflict, "A", "root", "A")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := analyze(t, tt.src)
			if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
				t.Errorf("diagnostics diff: %v\ngot: %q", diff, got)
			}
		})
	}
}
