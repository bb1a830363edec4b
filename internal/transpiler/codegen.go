package transpiler

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/tangzhangming/meantree/internal/i18n"
	"github.com/tangzhangming/meantree/internal/symbol"
)

// CodeGen 代码生成器
type CodeGen struct {
	transpiler *Transpiler
	builder    strings.Builder
	indent     int
}

// NewCodeGen 创建一个新的代码生成器
func NewCodeGen(t *Transpiler) *CodeGen {
	return &CodeGen{transpiler: t}
}

// FormatError 生成的源码无法格式化，通常是声明里嵌入的 Go 片段有误
type FormatError struct {
	File   string
	Source []byte // 未格式化的生成结果
	Err    error
}

func (e *FormatError) Error() string {
	return e.File + ": " + i18n.T(i18n.ErrFormatGenerated, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Generate 生成并格式化 Go 代码
func (g *CodeGen) Generate() ([]byte, error) {
	g.builder.Reset()
	g.indent = 0
	t := g.transpiler

	g.writeLine(fmt.Sprintf("// Code generated by meantree from %s. DO NOT EDIT.", t.file.Name))
	g.writeLine("")
	g.writeLine("package " + t.pkg)
	g.writeLine("")
	g.generateImports()

	g.writeLine(fmt.Sprintf("// %s 持有本文件所有 meaning 的存储", t.arena))
	g.writeLine(fmt.Sprintf("type %s = %s.Arena", t.arena, runtimeAlias))
	g.writeLine("")

	for _, m := range t.meanings.Values() {
		g.generateMeaning(m)
	}

	src := []byte(g.builder.String())
	out, err := imports.Process("", src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: !t.config.ShouldFixImports(),
	})
	if err != nil {
		return src, &FormatError{File: t.file.Name, Source: src, Err: err}
	}
	return out, nil
}

// generateImports 生成运行时包和用户导入
func (g *CodeGen) generateImports() {
	t := g.transpiler
	g.writeLine("import (")
	g.indent++
	g.writeLine(runtimeAlias + " " + strconv.Quote(t.config.Project.Runtime))
	for _, imp := range t.file.Imports {
		if imp.Alias != "" {
			g.writeLine(imp.Alias + " " + strconv.Quote(imp.Path))
		} else {
			g.writeLine(strconv.Quote(imp.Path))
		}
	}
	g.indent--
	g.writeLine(")")
	g.writeLine("")
}

// generateMeaning 生成一个 meaning 的全部声明
func (g *CodeGen) generateMeaning(m symbol.Symbol) {
	g.generateInfo(m)
	g.generateLayer(m)
	g.generateHandle(m)
	g.generateDowncasts(m)
	g.generateAccessors(m)
	g.generateConstructors(m)
	g.generateMethods(m)
	g.generateOverrides(m)
}

// generateInfo 生成 meaning 的运行时元信息变量
func (g *CodeGen) generateInfo(m symbol.Symbol) {
	t := g.transpiler
	g.writeLine(fmt.Sprintf("var %s = &%s.Info{", infoVar(m), runtimeAlias))
	g.indent++
	g.writeLine(fmt.Sprintf("Name: %q,", m.Name()))
	g.writeLine(fmt.Sprintf("Package: %q,", t.pkg))
	g.writeLine(fmt.Sprintf("FullName: %q,", t.pkg+"."+m.Name()))
	if parent := m.Inherits(); !parent.IsZero() {
		g.writeLine(fmt.Sprintf("Parent: %s,", infoVar(parent)))
	}
	g.indent--
	g.writeLine("}")
	g.writeLine("")
}

// writeDoc 把多行文档写成行注释
func (g *CodeGen) writeDoc(doc string) {
	if doc == "" {
		return
	}
	for _, line := range strings.Split(doc, "\n") {
		g.writeLine(strings.TrimRight("// "+line, " "))
	}
}

// writeBody 逐行写入用户代码片段，保留原有缩进
func (g *CodeGen) writeBody(body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	for _, line := range strings.Split(body, "\n") {
		g.write(strings.TrimRight(line, " \t\r"))
		g.write("\n")
	}
}

// write 写入字符串
func (g *CodeGen) write(s string) {
	g.builder.WriteString(s)
}

// writeLine 写入一行
func (g *CodeGen) writeLine(s string) {
	if s != "" {
		g.writeIndent()
	}
	g.builder.WriteString(s)
	g.builder.WriteString("\n")
}

// writeIndent 写入缩进
func (g *CodeGen) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.builder.WriteString("\t")
	}
}

// 生成代码中使用的名字

func layerName(m symbol.Symbol) string    { return "layer" + symbol.Capitalize(m.Name()) }
func variantName(m symbol.Symbol) string  { return layerName(m) + "Variant" }
func terminalName(m symbol.Symbol) string { return layerName(m) + "Terminal" }
func infoVar(m symbol.Symbol) string      { return "info" + symbol.Capitalize(m.Name()) }
func ctorName(m symbol.Symbol) string     { return "ctor" + symbol.Capitalize(m.Name()) }
func initName(m symbol.Symbol) string     { return "init" + symbol.Capitalize(m.Name()) }
func newName(m symbol.Symbol) string      { return "New" + symbol.Capitalize(m.Name()) }
func downcastName(m symbol.Symbol) string { return "To" + symbol.Capitalize(m.Name()) }
func dispatchVar(m symbol.Symbol) string  { return "as" + symbol.Capitalize(m.Name()) }

func toLayerName(m, sub symbol.Symbol) string {
	return layerName(m) + "To" + symbol.Capitalize(sub.Name())
}

func overrideName(m symbol.Symbol, method string) string {
	return "override" + symbol.Capitalize(m.Name()) + symbol.Capitalize(method)
}

// topLevelNames 返回为 m 生成的包级标识符
func topLevelNames(m symbol.Symbol) []string {
	names := []string{layerName(m), variantName(m), terminalName(m), infoVar(m), ctorName(m), initName(m), newName(m)}
	for _, sub := range m.Submeanings().Items() {
		names = append(names, toLayerName(m, sub))
	}
	return names
}
