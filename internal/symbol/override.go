package symbol

// OverrideLogicMapping 是覆盖映射树中的一个节点
type OverrideLogicMapping struct {
	code    string
	hasCode bool
	mapping *SharedMap[Symbol, *OverrideLogicMapping]
}

// NewOverrideLogicMapping 创建空节点
func NewOverrideLogicMapping() *OverrideLogicMapping {
	return &OverrideLogicMapping{mapping: NewSharedMap[Symbol, *OverrideLogicMapping]()}
}

// OverrideCode 返回该层的覆盖代码
func (o *OverrideLogicMapping) OverrideCode() (string, bool) {
	return o.code, o.hasCode
}

// SetOverrideCode 设置该层的覆盖代码
func (o *OverrideLogicMapping) SetOverrideCode(code string) {
	o.code = code
	o.hasCode = true
}

// OverrideLogicMapping 返回更深一层的映射
func (o *OverrideLogicMapping) OverrideLogicMapping() *SharedMap[Symbol, *OverrideLogicMapping] {
	return o.mapping
}

// RegisterOverride 沿 path 逐层建立节点，并把 code 放到最后一层。
// path 是方法定义者之下、到覆盖者为止的 meaning 序列。
func RegisterOverride(method Symbol, path []Symbol, code string) *OverrideLogicMapping {
	if len(path) == 0 {
		panic("symbol: override path is empty")
	}
	m := method.OverrideLogicMapping()
	var node *OverrideLogicMapping
	for _, meaning := range path {
		next, ok := m.Get(meaning)
		if !ok {
			next = NewOverrideLogicMapping()
			m.Set(meaning, next)
		}
		node = next
		m = next.OverrideLogicMapping()
	}
	node.SetOverrideCode(code)
	return node
}

// ResolveOverride 对运行时 meaning 的升序链 asc 求方法的生效覆盖代码。
// 沿链越深的覆盖越优先，缺失的层继承外层行为。
// 没有任何覆盖时返回 false，表示使用方法本身的实现。
func ResolveOverride(method Symbol, asc []Symbol) (string, bool) {
	start := -1
	for i, m := range asc {
		if m == method.DefinedIn() {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}

	var code string
	var found bool
	m := method.OverrideLogicMapping()
	for _, meaning := range asc[start+1:] {
		node, ok := m.Get(meaning)
		if !ok {
			break
		}
		if c, ok := node.OverrideCode(); ok {
			code, found = c, true
		}
		m = node.OverrideLogicMapping()
	}
	return code, found
}
