package transpiler

import (
	"fmt"
	"strings"

	"github.com/tangzhangming/meantree/internal/symbol"
)

// typeParamList 返回带方括号的类型参数声明
func (c *constructor) typeParamList() string {
	if strings.TrimSpace(c.decl.TypeParams) == "" {
		return ""
	}
	return "[" + c.decl.TypeParams + "]"
}

// typeArgs 返回显式实例化用的类型实参
func (c *constructor) typeArgs() string {
	if len(c.typeParams) == 0 {
		return ""
	}
	return "[" + strings.Join(c.typeParams, ", ") + "]"
}

// paramList 在首个参数之后拼接声明的参数
func (c *constructor) paramList(first string) string {
	if strings.TrimSpace(c.decl.Params) == "" {
		return first
	}
	return first + ", " + c.decl.Params
}

// callArgs 在首个实参之后拼接转发的实参
func callArgs(first, rest string) string {
	if strings.TrimSpace(rest) == "" {
		return first
	}
	return first + ", " + rest
}

// freeName 返回不与构造器参数重名的局部变量名
func freeName(base string, taken []string) string {
	name := base
	for i := 1; ; i++ {
		clash := false
		for _, t := range taken {
			if t == name {
				clash = true
				break
			}
		}
		if !clash {
			return name
		}
		name = fmt.Sprintf("%s%d", base, i)
	}
}

// generateConstructors 生成 ctorM、initM 和 NewM
func (g *CodeGen) generateConstructors(m symbol.Symbol) {
	t := g.transpiler
	c := t.ctors[m]
	name := m.Name()
	parent := m.Inherits()
	selfParam := receiverName + " " + name

	// 自身构造逻辑
	g.writeLine(fmt.Sprintf("func %s%s(%s) {", ctorName(m), c.typeParamList(), c.paramList(selfParam)))
	g.writeBody(c.decl.Body)
	g.writeLine("}")
	g.writeLine("")

	// 初始化链：先祖先后自身
	g.writeLine(fmt.Sprintf("func %s%s(%s) {", initName(m), c.typeParamList(), c.paramList(selfParam)))
	g.indent++
	if !parent.IsZero() {
		g.writeLine(fmt.Sprintf("%s(%s)", initName(parent), callArgs(receiverName+"."+parent.Name(), c.decl.SuperArgs)))
	}
	g.writeLine(fmt.Sprintf("%s%s(%s)", ctorName(m), c.typeArgs(), callArgs(receiverName, c.params.args())))
	g.indent--
	g.writeLine("}")
	g.writeLine("")

	// 工厂：一次分配所有层，再按祖先到自身的顺序运行构造逻辑
	arena := freeName("arena", c.params.names)
	cto := freeName("cto", c.params.names)
	asc := symbol.AscendingMeaningList(m)

	g.writeLine(fmt.Sprintf("// %s 在 arena 中创建一个 %s", newName(m), name))
	g.writeLine(fmt.Sprintf("func %s%s(%s) %s {", newName(m), c.typeParamList(), c.paramList(arena+" *"+t.arena), name))
	g.indent++
	var wrap, unwrap strings.Builder
	for i := len(asc) - 1; i > 0; i-- {
		wrap.WriteString(asc[i].Name() + "{")
		unwrap.WriteString("}")
	}
	g.writeLine(fmt.Sprintf("%s := %s%s{root: %s.Allocate(%s, &%s{", cto, wrap.String(), asc[0].Name(), runtimeAlias, arena, layerName(asc[0])))
	g.indent++
	g.writeLayerLiteral(asc, 0)
	g.indent--
	g.writeLine(fmt.Sprintf("})}%s", unwrap.String()))
	if !parent.IsZero() {
		g.writeLine(fmt.Sprintf("%s(%s)", initName(parent), callArgs(cto+"."+parent.Name(), c.decl.SuperArgs)))
	}
	g.writeLine(fmt.Sprintf("%s%s(%s)", ctorName(m), c.typeArgs(), callArgs(cto, c.params.args())))
	g.writeLine("return " + cto)
	g.indent--
	g.writeLine("}")
	g.writeLine("")
}

// writeLayerLiteral 写出第 i 层及其以下各层的字段初始值
func (g *CodeGen) writeLayerLiteral(asc []symbol.Symbol, i int) {
	m := asc[i]
	for _, f := range m.Fields().Values() {
		g.writeLine(fmt.Sprintf("%s: %s,", f.Name(), cellInit(f)))
	}
	if i == len(asc)-1 {
		g.writeLine(fmt.Sprintf("variant: %s{},", terminalName(m)))
		return
	}
	next := asc[i+1]
	g.writeLine(fmt.Sprintf("variant: %s{next: &%s{", toLayerName(m, next), layerName(next)))
	g.indent++
	g.writeLayerLiteral(asc, i+1)
	g.indent--
	g.writeLine("}},")
}
