package transpiler

import (
	"slices"
	"sort"
	"strings"

	"github.com/tangzhangming/meantree/internal/i18n"
	"github.com/tangzhangming/meantree/internal/parser"
	"github.com/tangzhangming/meantree/internal/symbol"
)

// runtimeAlias 是生成代码导入运行时包时使用的名字
const runtimeAlias = "meaning"

// collectMeanings 为每个 meaning 声明创建符号
func (t *Transpiler) collectMeanings() {
	for _, decl := range t.file.Meanings {
		if t.meanings.Has(decl.Name) {
			t.report(decl.Pos, i18n.ErrDuplicateMeaning, decl.Name)
			continue
		}
		if decl.Name == t.arena {
			t.report(decl.Pos, i18n.ErrArenaConflict, t.arena)
			continue
		}
		if decl.Name == runtimeAlias || decl.Name == "_" {
			t.report(decl.Pos, i18n.ErrReservedMeaningName, decl.Name)
			continue
		}
		m := t.factory.CreateMeaningSlot(decl.Name)
		t.meanings.Set(decl.Name, m)
		t.decls[m] = decl
	}
}

// resolveInheritance 分两步连接父子关系：先设置 inherits 并拆环，再按声明顺序登记子 meaning
func (t *Transpiler) resolveInheritance() {
	for _, m := range t.meanings.Values() {
		decl := t.decls[m]
		if decl.Parent == "" {
			continue
		}
		parent, ok := t.meanings.Get(decl.Parent)
		if !ok {
			t.report(decl.ParentPos, i18n.ErrUnknownParent, decl.Name, decl.Parent)
			continue
		}
		m.SetInherits(parent)
	}

	// 成环的 meaning 当作根处理，后续仍可继续检查
	for _, m := range t.meanings.Values() {
		if cycle := findCycle(m); cycle != nil {
			t.report(t.decls[m].ParentPos, i18n.ErrInheritanceCycle, m.Name(), strings.Join(cycle, " -> "))
			m.SetInherits(symbol.Symbol{})
		}
	}

	for _, m := range t.meanings.Values() {
		if parent := m.Inherits(); !parent.IsZero() {
			parent.Submeanings().Append(m)
		}
	}
}

// findCycle 返回经过 m 的继承环，m 不在环上时返回 nil
func findCycle(m symbol.Symbol) []string {
	names := []string{m.Name()}
	visited := map[symbol.Symbol]bool{m: true}
	for cur := m.Inherits(); !cur.IsZero(); cur = cur.Inherits() {
		names = append(names, cur.Name())
		if cur == m {
			return names
		}
		if visited[cur] {
			return nil
		}
		visited[cur] = true
	}
	return nil
}

// checkGeneratedNames 检查 meaning 名和 arena 名是否与生成的包级标识符冲突
func (t *Transpiler) checkGeneratedNames() {
	owners := make(map[string]symbol.Symbol)
	for _, m := range t.meanings.Values() {
		for _, name := range topLevelNames(m) {
			if owner, taken := owners[name]; taken && owner != m {
				t.report(t.decls[m].Pos, i18n.ErrDuplicateMeaning, m.Name())
				break
			}
			owners[name] = m
		}
	}
	if _, taken := owners[t.arena]; taken {
		t.report(parser.Pos{Line: 1, Column: 1}, i18n.ErrArenaConflict, t.arena)
	}
	for _, m := range t.meanings.Values() {
		if _, taken := owners[m.Name()]; taken {
			t.report(t.decls[m].Pos, i18n.ErrReservedMeaningName, m.Name())
		}
	}
}

// analysisOrder 返回祖先在前的 meaning 顺序，同深度保持声明顺序
func (t *Transpiler) analysisOrder() []symbol.Symbol {
	order := t.meanings.Values()
	depth := make(map[symbol.Symbol]int, len(order))
	for _, m := range order {
		depth[m] = len(symbol.AscendingMeaningList(m))
	}
	sort.SliceStable(order, func(i, j int) bool {
		return depth[order[i]] < depth[order[j]]
	})
	return order
}

// memberKind 区分句柄类型上的成员来源
type memberKind int

const (
	memberGenerated memberKind = iota // root、variant、To<S>、嵌入的父句柄
	memberMethod
	memberAccessor // 字段的 getter 和 setter
)

// memberOwner 查找 m 或其祖先中已占用 name 的 meaning。
// 后代的访问器可以遮蔽祖先的访问器，和 Go 的方法提升规则一致。
func (t *Transpiler) memberOwner(m symbol.Symbol, name string, kind memberKind) (symbol.Symbol, bool) {
	for _, a := range symbol.AscendingMeaningList(m) {
		k, ok := t.members[a][name]
		if !ok {
			continue
		}
		if a != m && k == memberAccessor && kind == memberAccessor {
			continue
		}
		return a, true
	}
	return symbol.Symbol{}, false
}

// claimAll 为 m 登记一组成员名，任一冲突时报告并不登记
func (t *Transpiler) claimAll(m symbol.Symbol, pos parser.Pos, kind memberKind, names ...string) bool {
	for _, name := range names {
		if owner, taken := t.memberOwner(m, name, kind); taken {
			t.report(pos, i18n.ErrMemberConflict, m.Name(), name, owner.Name())
			return false
		}
	}
	if t.members[m] == nil {
		t.members[m] = make(map[string]memberKind)
	}
	for _, name := range names {
		t.members[m][name] = kind
	}
	return true
}

// reserveMembers 登记句柄类型上由生成器占用的名字
func (t *Transpiler) reserveMembers(m symbol.Symbol) {
	decl := t.decls[m]
	var names []string
	if parent := m.Inherits(); parent.IsZero() {
		names = append(names, "root", "variant", "RuntimeInfo", "runtimeInfo")
	} else {
		names = append(names, parent.Name())
	}
	for _, sub := range m.Submeanings().Items() {
		names = append(names, downcastName(sub))
	}
	for _, name := range names {
		t.claimAll(m, decl.Pos, memberGenerated, name)
	}
}

// collectFields 登记字段，重名字段报告后跳过
func (t *Transpiler) collectFields(m symbol.Symbol) {
	for _, fd := range t.decls[m].Fields {
		if m.Fields().Has(fd.Name) {
			t.report(fd.Pos, i18n.ErrRedefining, fd.Name)
			continue
		}
		if !t.claimAll(m, fd.Pos, memberAccessor, fd.Name, symbol.SetterName(fd.Name)) {
			continue
		}
		init := fd.Default
		if init == "" {
			init = "*new(" + fd.Type + ")"
		}
		m.Fields().Set(fd.Name, t.factory.CreateFieldSlot(fd.Ref, fd.Name, fd.Type, init))
	}
}

// collectConstructor 解析构造器，没有声明时合成一个空构造器
func (t *Transpiler) collectConstructor(m symbol.Symbol) {
	decl := t.decls[m]
	cd := &parser.ConstructorDecl{Pos: decl.Pos}
	if len(decl.Constructors) > 0 {
		cd = decl.Constructors[0]
		for _, extra := range decl.Constructors[1:] {
			t.report(extra.Pos, i18n.ErrDuplicateCtor, m.Name())
		}
	}

	ctor := &constructor{decl: cd, params: &signature{}}
	if sig, err := parseSignature(cd.Params); err != nil {
		t.report(cd.Pos, i18n.ErrInvalidParams, m.Name(), "constructor("+cd.Params+")", err)
	} else if sig.unnamed {
		t.report(cd.Pos, i18n.ErrUnnamedParams, m.Name(), "constructor")
	} else {
		ctor.params = sig
	}
	if tps, err := parseTypeParams(cd.TypeParams); err != nil {
		t.report(cd.Pos, i18n.ErrInvalidParams, m.Name(), "constructor["+cd.TypeParams+"]", err)
	} else {
		ctor.typeParams = tps
	}

	parent := m.Inherits()
	switch {
	case cd.HasSuper && parent.IsZero():
		t.report(cd.Pos, i18n.ErrSuperWithoutParent, m.Name())
	case !cd.HasSuper && !parent.IsZero():
		if pc := t.ctors[parent]; pc != nil && len(pc.params.names) > 0 {
			t.report(cd.Pos, i18n.ErrMissingSuper, m.Name(), parent.Name())
		}
	}
	t.ctors[m] = ctor
}

// collectMethods 登记方法定义和覆盖
func (t *Transpiler) collectMethods(m symbol.Symbol) {
	for _, md := range t.decls[m].Methods {
		if md.TypeParams != "" {
			t.report(md.Pos, i18n.ErrMethodTypeParams, m.Name(), md.Name)
			continue
		}
		sig, err := parseSignature(md.Params)
		if err != nil {
			t.report(md.Pos, i18n.ErrInvalidParams, m.Name(), md.Name+"("+md.Params+")", err)
			continue
		}
		if sig.unnamed {
			t.report(md.Pos, i18n.ErrUnnamedParams, m.Name(), md.Name)
			continue
		}
		results, err := parseResults(md.Results)
		if err != nil {
			t.report(md.Pos, i18n.ErrInvalidParams, m.Name(), md.Name+" results "+md.Results, err)
			continue
		}
		if md.Override {
			t.collectOverride(m, &method{decl: md, params: sig, results: results})
			continue
		}

		if m.Methods().Has(md.Name) {
			t.report(md.Pos, i18n.ErrDuplicateMethod, m.Name(), md.Name)
			continue
		}
		if parent := m.Inherits(); !parent.IsZero() {
			if base, ok := symbol.LookupMethod(parent, md.Name); ok {
				t.report(md.Pos, i18n.ErrMustOverride, m.Name(), md.Name, base.DefinedIn().Name())
				continue
			}
		}
		if !t.claimAll(m, md.Pos, memberMethod, md.Name) {
			continue
		}
		sym := t.factory.CreateMethodSlot(md.Name, m, md.Doc)
		m.Methods().Set(md.Name, sym)
		t.methods[sym] = &method{decl: md, params: sig, results: results}
	}
}

// collectOverride 把覆盖登记到被覆盖方法的覆盖映射中，签名必须与被覆盖方法一致
func (t *Transpiler) collectOverride(m symbol.Symbol, ov *method) {
	md := ov.decl
	var base symbol.Symbol
	found := false
	if parent := m.Inherits(); !parent.IsZero() {
		base, found = symbol.LookupMethod(parent, md.Name)
	}
	if !found {
		t.report(md.Pos, i18n.ErrOverrideMissing, m.Name(), md.Name)
		return
	}
	if t.overridden[m][md.Name] {
		t.report(md.Pos, i18n.ErrDuplicateMethod, m.Name(), md.Name)
		return
	}
	bm := t.methods[base]
	if !slices.Equal(ov.params.types, bm.params.types) || !slices.Equal(ov.results, bm.results) {
		want := funcSignature(bm.params.types, bm.results)
		t.report(md.Pos, i18n.ErrOverrideSignature, m.Name(), md.Name, want, base.DefinedIn().Name())
		return
	}
	if t.overridden[m] == nil {
		t.overridden[m] = make(map[string]bool)
	}
	t.overridden[m][md.Name] = true

	asc := symbol.AscendingMeaningList(m)
	path := asc[symbol.IndexOf(asc, base.DefinedIn())+1:]
	symbol.RegisterOverride(base, path, t.overrideCode(base, path))
	t.overrides[m] = append(t.overrides[m], &override{decl: md, base: base, meaning: m})
}

// overrideCode 生成基方法中转发到覆盖实现的短路代码，path 从基方法所在层的下一层到覆盖者
func (t *Transpiler) overrideCode(base symbol.Symbol, path []symbol.Symbol) string {
	bm := t.methods[base]
	m := path[len(path)-1]
	vars := dispatchVars(path, bm.params.names)
	call := vars[len(vars)-1] + "." + overrideName(m, base.Name()) + "(" + bm.params.args() + ")"
	if strings.TrimSpace(bm.decl.Results) == "" {
		return call + "\nreturn"
	}
	return "return " + call
}
