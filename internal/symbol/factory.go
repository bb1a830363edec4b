package symbol

// Factory 创建符号并持有它们所在的 Arena
type Factory struct {
	arena *Arena[slot]
}

// NewFactory 创建一个新的符号工厂
func NewFactory() *Factory {
	return &Factory{arena: NewArena[slot]()}
}

// CreateMeaningSlot 创建 meaning 符号，父 meaning 稍后通过 SetInherits 设置
func (f *Factory) CreateMeaningSlot(name string) Symbol {
	return f.alloc(&slot{
		kind: KindMeaning,
		name: name,
		meaning: &meaningData{
			submeanings: NewSharedList[Symbol](),
			methods:     NewSharedMap[string, Symbol](),
			fields:      NewSharedMap[string, Symbol](),
		},
	})
}

// CreateFieldSlot 创建字段符号
func (f *Factory) CreateFieldSlot(isRef bool, name, fieldType, fieldInit string) Symbol {
	return f.alloc(&slot{
		kind:  KindField,
		name:  name,
		field: &fieldData{isRef: isRef, fieldType: fieldType, fieldInit: fieldInit},
	})
}

// CreateMethodSlot 创建方法符号
func (f *Factory) CreateMethodSlot(name string, definedIn Symbol, doc string) Symbol {
	definedIn.expect(KindMeaning)
	return f.alloc(&slot{
		kind: KindMethod,
		name: name,
		method: &methodData{
			definedIn: definedIn,
			doc:       doc,
			mapping:   NewSharedMap[Symbol, *OverrideLogicMapping](),
		},
	})
}

// Len 返回已创建的符号数
func (f *Factory) Len() int {
	return f.arena.Len()
}

// Release 一次性释放全部符号
func (f *Factory) Release() {
	f.arena.Release()
}

func (f *Factory) alloc(s *slot) Symbol {
	return Symbol{h: f.arena.Allocate(s)}
}
