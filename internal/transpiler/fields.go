package transpiler

import (
	"fmt"

	"github.com/tangzhangming/meantree/internal/symbol"
)

// HandlePath 返回从 from 的句柄到祖先 to 的句柄所经过的嵌入字段名。
// 链 [Root, A, B, C] 中 C 到 A 为 ["B", "A"]，C 到 C 为空。
func HandlePath(asc []symbol.Symbol, from, to symbol.Symbol) []string {
	fi := symbol.IndexOf(asc, from)
	ti := symbol.IndexOf(asc, to)
	if fi < 0 || ti < 0 || ti > fi {
		panic(fmt.Sprintf("transpiler: %s is not an ancestor of %s", to, from))
	}
	path := make([]string, 0, fi-ti)
	for i := fi - 1; i >= ti; i-- {
		path = append(path, asc[i].Name())
	}
	return path
}

// MatchField 从第 i 层的表达式 base 出发，沿变体链走到 asc 最后一层并选择 field。
// 每一步都是单值类型断言，变体不符时生成的代码会 panic。
func MatchField(asc []symbol.Symbol, i int, base, field string) string {
	if i == len(asc)-1 {
		return base + "." + field
	}
	next := base + ".variant.(" + toLayerName(asc[i], asc[i+1]) + ").next"
	return MatchField(asc, i+1, next, field)
}

// generateAccessors 在声明字段的 meaning 上生成 getter 和 setter
func (g *CodeGen) generateAccessors(m symbol.Symbol) {
	asc := symbol.AscendingMeaningList(m)
	root := rootLayer(asc, m)
	for _, f := range m.Fields().Values() {
		cell := MatchField(asc, 0, root, f.Name())
		get, set := "Get", "Set"
		if f.IsRef() {
			get, set = "Borrow", "Replace"
		}

		g.writeLine(fmt.Sprintf("func (%s %s) %s() %s {", receiverName, m.Name(), f.Name(), f.FieldType()))
		g.indent++
		g.writeLine(fmt.Sprintf("return %s.%s()", cell, get))
		g.indent--
		g.writeLine("}")
		g.writeLine("")

		g.writeLine(fmt.Sprintf("func (%s %s) %s(v %s) {", receiverName, m.Name(), symbol.SetterName(f.Name()), f.FieldType()))
		g.indent++
		g.writeLine(fmt.Sprintf("%s.%s(v)", cell, set))
		g.indent--
		g.writeLine("}")
		g.writeLine("")
	}
}
