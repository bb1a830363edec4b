package symbol

import "fmt"

// Handle 是 Arena 中某个槽位的非拥有引用，按 (arena, 下标, 代) 比较
type Handle[T any] struct {
	arena *Arena[T]
	index uint32
	gen   uint32
}

// IsZero 判断是否为空句柄
func (h Handle[T]) IsZero() bool {
	return h.arena == nil
}

// Arena 是唯一持有槽位数据的容器，所有句柄一起失效
type Arena[T any] struct {
	slots []*T
	gen   uint32
}

// NewArena 创建一个新的 Arena
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{gen: 1}
}

// Allocate 放入一个值并返回它的句柄
func (a *Arena[T]) Allocate(v *T) Handle[T] {
	a.slots = append(a.slots, v)
	return Handle[T]{arena: a, index: uint32(len(a.slots) - 1), gen: a.gen}
}

// Get 解引用句柄，句柄已失效时 panic
func (a *Arena[T]) Get(h Handle[T]) *T {
	if h.arena != a {
		panic("symbol: handle belongs to another arena")
	}
	if h.gen != a.gen || int(h.index) >= len(a.slots) {
		panic(fmt.Sprintf("symbol: stale handle %d (generation %d, arena at %d)", h.index, h.gen, a.gen))
	}
	return a.slots[h.index]
}

// Len 返回已分配的槽位数量
func (a *Arena[T]) Len() int {
	return len(a.slots)
}

// Release 丢弃全部槽位，之前分配的句柄全部失效
func (a *Arena[T]) Release() {
	a.slots = nil
	a.gen++
}
