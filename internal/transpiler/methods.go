package transpiler

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tangzhangming/meantree/internal/symbol"
)

// methodHeader 返回方法签名，不含左花括号
func methodHeader(recv, name, params, results string) string {
	header := fmt.Sprintf("func (%s %s) %s(%s)", receiverName, recv, name, params)
	if results = strings.TrimSpace(results); results != "" {
		header += " " + results
	}
	return header
}

// generateMethods 生成 meaning 自己定义的方法，覆盖分派写在方法体之前
func (g *CodeGen) generateMethods(m symbol.Symbol) {
	for _, sym := range m.Methods().Values() {
		md := g.transpiler.methods[sym].decl
		g.writeDoc(sym.Doc())
		g.writeLine(methodHeader(m.Name(), md.Name, md.Params, md.Results) + " {")
		g.indent++
		g.generateDispatch(receiverName, sym.OverrideLogicMapping(), nil, g.transpiler.methods[sym].params.names)
		g.indent--
		g.writeBody(md.Body)
		g.writeLine("}")
		g.writeLine("")
	}
}

// dispatchVars 为 path 上每一层的向下转换结果选择变量名，避开方法参数和外层已用的名字
func dispatchVars(path []symbol.Symbol, params []string) []string {
	taken := slices.Clone(params)
	vars := make([]string, len(path))
	for i, m := range path {
		vars[i] = freeName(dispatchVar(m), taken)
		taken = append(taken, vars[i])
	}
	return vars
}

// generateDispatch 按覆盖映射生成嵌套的向下转换，深层的覆盖先于浅层检查
//
//	if asCircle, ok := self.ToCircle(); ok {
//		if asRing, ok := asCircle.ToRing(); ok {
//			return asRing.overrideRingDescribe()
//		}
//		return asCircle.overrideCircleDescribe()
//	}
//
// 变量名与方法参数重名时改用 ok1、asCircle1 这样的名字，转发的实参仍指向参数。
func (g *CodeGen) generateDispatch(cur string, mapping *symbol.SharedMap[symbol.Symbol, *symbol.OverrideLogicMapping], path []symbol.Symbol, params []string) {
	ok := freeName("ok", params)
	for sub, node := range mapping.All() {
		next := append(path[:len(path):len(path)], sub)
		vars := dispatchVars(next, params)
		as := vars[len(vars)-1]
		g.writeLine(fmt.Sprintf("if %s, %s := %s.%s(); %s {", as, ok, cur, downcastName(sub), ok))
		g.indent++
		g.generateDispatch(as, node.OverrideLogicMapping(), next, params)
		if code, found := node.OverrideCode(); found {
			for _, line := range strings.Split(code, "\n") {
				g.writeLine(line)
			}
		}
		g.indent--
		g.writeLine("}")
	}
}

// generateOverrides 生成覆盖实现，由祖先方法的分派代码调用
func (g *CodeGen) generateOverrides(m symbol.Symbol) {
	for _, ov := range g.transpiler.overrides[m] {
		md := ov.decl
		g.writeDoc(md.Doc)
		g.writeLine(methodHeader(m.Name(), overrideName(m, md.Name), md.Params, md.Results) + " {")
		g.writeBody(md.Body)
		g.writeLine("}")
		g.writeLine("")
	}
}
