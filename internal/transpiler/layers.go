package transpiler

import (
	"fmt"
	"strings"

	"github.com/tangzhangming/meantree/internal/symbol"
)

// cellType 返回字段在层结构体中的存储单元类型
func cellType(f symbol.Symbol) string {
	if f.IsRef() {
		return "*" + runtimeAlias + ".Ref[" + f.FieldType() + "]"
	}
	return runtimeAlias + ".Value[" + f.FieldType() + "]"
}

// cellInit 返回字段存储单元的初始化表达式
func cellInit(f symbol.Symbol) string {
	if f.IsRef() {
		return runtimeAlias + ".NewRef[" + f.FieldType() + "](" + f.FieldInit() + ")"
	}
	return runtimeAlias + ".NewValue[" + f.FieldType() + "](" + f.FieldInit() + ")"
}

// generateLayer 生成 meaning 自己的层结构体和它的变体类型
//
//	type layerShape struct {
//		name *meaning.Ref[string]
//		variant layerShapeVariant
//	}
//
// 变体是密封接口，由 layerShapeTerminal 和每个直接子 meaning 的 layerShapeTo<S> 实现。
func (g *CodeGen) generateLayer(m symbol.Symbol) {
	layer := layerName(m)
	variant := variantName(m)
	marker := "is" + symbol.Capitalize(variant)

	g.writeLine(fmt.Sprintf("type %s struct {", layer))
	g.indent++
	for _, f := range m.Fields().Values() {
		g.writeLine(f.Name() + " " + cellType(f))
	}
	g.writeLine("variant " + variant)
	g.indent--
	g.writeLine("}")
	g.writeLine("")

	g.writeLine(fmt.Sprintf("type %s interface {", variant))
	g.indent++
	g.writeLine(marker + "()")
	g.indent--
	g.writeLine("}")
	g.writeLine("")

	g.writeLine(fmt.Sprintf("type %s struct{}", terminalName(m)))
	g.writeLine("")
	g.writeLine(fmt.Sprintf("func (%s) %s() {}", terminalName(m), marker))
	g.writeLine("")

	subs := m.Submeanings().Items()
	for _, sub := range subs {
		to := toLayerName(m, sub)
		g.writeLine(fmt.Sprintf("type %s struct {", to))
		g.indent++
		g.writeLine("next *" + layerName(sub))
		g.indent--
		g.writeLine("}")
		g.writeLine("")
		g.writeLine(fmt.Sprintf("func (%s) %s() {}", to, marker))
		g.writeLine("")
	}

	// runtimeInfo 沿变体链找到最底层的 meaning
	g.writeLine(fmt.Sprintf("func (l *%s) runtimeInfo() *%s.Info {", layer, runtimeAlias))
	g.indent++
	if len(subs) > 0 {
		g.writeLine("switch v := l.variant.(type) {")
		for _, sub := range subs {
			g.writeLine("case " + toLayerName(m, sub) + ":")
			g.indent++
			g.writeLine("return v.next.runtimeInfo()")
			g.indent--
		}
		g.writeLine("}")
	}
	g.writeLine("return " + infoVar(m))
	g.indent--
	g.writeLine("}")
	g.writeLine("")
}

// generateHandle 生成 meaning 的句柄类型
//
// 根句柄持有根层的弱引用，后代句柄嵌入父句柄，因此所有句柄共享同一条存储链。
func (g *CodeGen) generateHandle(m symbol.Symbol) {
	name := m.Name()
	g.writeDoc(g.transpiler.decls[m].Doc)
	parent := m.Inherits()
	if parent.IsZero() {
		g.writeLine(fmt.Sprintf("type %s struct {", name))
		g.indent++
		g.writeLine(fmt.Sprintf("root %s.Handle[%s]", runtimeAlias, layerName(m)))
		g.indent--
		g.writeLine("}")
		g.writeLine("")

		g.writeLine("// RuntimeInfo 返回句柄所指对象实际 meaning 的元信息")
		g.writeLine(fmt.Sprintf("func (%s %s) RuntimeInfo() *%s.Info {", receiverName, name, runtimeAlias))
		g.indent++
		g.writeLine(fmt.Sprintf("return %s.root.Get().runtimeInfo()", receiverName))
		g.indent--
		g.writeLine("}")
		g.writeLine("")
		return
	}

	g.writeLine(fmt.Sprintf("type %s struct {", name))
	g.indent++
	g.writeLine(parent.Name())
	g.indent--
	g.writeLine("}")
	g.writeLine("")
}

// generateDowncasts 为每个直接子 meaning 生成 To<S>
func (g *CodeGen) generateDowncasts(m symbol.Symbol) {
	asc := symbol.AscendingMeaningList(m)
	variant := MatchField(asc, 0, rootLayer(asc, m), "variant")
	for _, sub := range m.Submeanings().Items() {
		g.writeLine(fmt.Sprintf("// %s 在对象实际是 %s 或其后代时返回对应句柄", downcastName(sub), sub.Name()))
		g.writeLine(fmt.Sprintf("func (%s %s) %s() (%s, bool) {", receiverName, m.Name(), downcastName(sub), sub.Name()))
		g.indent++
		g.writeLine(fmt.Sprintf("if _, ok := %s.(%s); ok {", variant, toLayerName(m, sub)))
		g.indent++
		g.writeLine(fmt.Sprintf("return %s{%s}, true", sub.Name(), receiverName))
		g.indent--
		g.writeLine("}")
		g.writeLine(fmt.Sprintf("return %s{}, false", sub.Name()))
		g.indent--
		g.writeLine("}")
		g.writeLine("")
	}
}

// rootLayer 返回从 from 的句柄取得根层指针的表达式
func rootLayer(asc []symbol.Symbol, from symbol.Symbol) string {
	path := HandlePath(asc, from, asc[0])
	var sb strings.Builder
	sb.WriteString(receiverName)
	for _, sel := range path {
		sb.WriteString(".")
		sb.WriteString(sel)
	}
	sb.WriteString(".root.Get()")
	return sb.String()
}
