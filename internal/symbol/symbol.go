package symbol

import "fmt"

// Kind 符号种类
type Kind int

const (
	KindMeaning Kind = iota + 1
	KindField
	KindMethod
)

func (k Kind) String() string {
	switch k {
	case KindMeaning:
		return "meaning"
	case KindField:
		return "field"
	case KindMethod:
		return "method"
	}
	return "unknown"
}

// slot 是 Arena 中存放的符号数据，每个槽位只填充与 kind 对应的部分
type slot struct {
	kind    Kind
	name    string
	meaning *meaningData
	field   *fieldData
	method  *methodData
}

type meaningData struct {
	inherits    Symbol
	submeanings *SharedList[Symbol]
	methods     *SharedMap[string, Symbol]
	fields      *SharedMap[string, Symbol]
}

type fieldData struct {
	isRef     bool
	fieldType string
	fieldInit string
}

type methodData struct {
	definedIn Symbol
	doc       string
	mapping   *SharedMap[Symbol, *OverrideLogicMapping]
}

// Symbol 是符号表中的一个条目。
// 它是可比较的值，== 与 map 键都按身份比较，从不比较内容。
// 零值表示"无"。
type Symbol struct {
	h Handle[slot]
}

// IsZero 判断是否为空符号
func (s Symbol) IsZero() bool {
	return s.h.IsZero()
}

func (s Symbol) data() *slot {
	if s.h.IsZero() {
		panic("symbol: use of zero Symbol")
	}
	return s.h.arena.Get(s.h)
}

func (s Symbol) expect(k Kind) *slot {
	d := s.data()
	if d.kind != k {
		panic(fmt.Sprintf("symbol: %q is a %s slot, not a %s slot", d.name, d.kind, k))
	}
	return d
}

// Kind 返回符号种类
func (s Symbol) Kind() Kind {
	return s.data().kind
}

// IsMeaningSlot 判断是否为 meaning
func (s Symbol) IsMeaningSlot() bool {
	return !s.IsZero() && s.data().kind == KindMeaning
}

// IsFieldSlot 判断是否为字段
func (s Symbol) IsFieldSlot() bool {
	return !s.IsZero() && s.data().kind == KindField
}

// IsMethodSlot 判断是否为方法
func (s Symbol) IsMethodSlot() bool {
	return !s.IsZero() && s.data().kind == KindMethod
}

// Name 返回符号名
func (s Symbol) Name() string {
	return s.data().name
}

func (s Symbol) String() string {
	if s.IsZero() {
		return "<none>"
	}
	d := s.data()
	return d.kind.String() + " " + d.name
}

// Inherits 返回父 meaning，根 meaning 返回零值
func (s Symbol) Inherits() Symbol {
	return s.expect(KindMeaning).meaning.inherits
}

// SetInherits 设置父 meaning
func (s Symbol) SetInherits(parent Symbol) {
	if !parent.IsZero() {
		parent.expect(KindMeaning)
	}
	s.expect(KindMeaning).meaning.inherits = parent
}

// Submeanings 返回直接子 meaning 列表
func (s Symbol) Submeanings() *SharedList[Symbol] {
	return s.expect(KindMeaning).meaning.submeanings
}

// Methods 返回本 meaning 定义的方法
func (s Symbol) Methods() *SharedMap[string, Symbol] {
	return s.expect(KindMeaning).meaning.methods
}

// Fields 返回本 meaning 声明的字段集合
func (s Symbol) Fields() *SharedMap[string, Symbol] {
	return s.expect(KindMeaning).meaning.fields
}

// IsRef 字段是否为 ref 字段
func (s Symbol) IsRef() bool {
	return s.expect(KindField).field.isRef
}

// FieldType 字段类型（Go 类型片段）
func (s Symbol) FieldType() string {
	return s.expect(KindField).field.fieldType
}

// FieldInit 字段默认值（Go 表达式片段）
func (s Symbol) FieldInit() string {
	return s.expect(KindField).field.fieldInit
}

// DefinedIn 方法所在的 meaning
func (s Symbol) DefinedIn() Symbol {
	return s.expect(KindMethod).method.definedIn
}

// Doc 方法的文档注释，可能为空
func (s Symbol) Doc() string {
	return s.expect(KindMethod).method.doc
}

// OverrideLogicMapping 方法的覆盖映射，键为后代 meaning
func (s Symbol) OverrideLogicMapping() *SharedMap[Symbol, *OverrideLogicMapping] {
	return s.expect(KindMethod).method.mapping
}
