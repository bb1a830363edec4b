// Package meaning 是 meantree 生成代码的运行时支持库。
//
// 生成的每个 meaning 类型都是对一条分层存储链的弱引用句柄，
// 存储本身只由 Arena 持有。
package meaning

import (
	"sync"
	"sync/atomic"
	"weak"
)

// Arena 持有所有分层存储的强引用
type Arena struct {
	mu       sync.Mutex
	items    []any
	released atomic.Bool
}

// NewArena 创建一个空的 Arena
func NewArena() *Arena {
	return &Arena{}
}

// Len 返回 Arena 中分配的存储数量
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.items)
}

// Release 释放 Arena 持有的全部存储，之后所有句柄都失效
func (a *Arena) Release() {
	a.mu.Lock()
	a.items = nil
	a.mu.Unlock()
	a.released.Store(true)
}

// Released 判断 Arena 是否已经释放
func (a *Arena) Released() bool {
	return a.released.Load()
}

// Allocate 把 v 交给 Arena 持有并返回它的弱引用句柄
func Allocate[T any](a *Arena, v *T) Handle[T] {
	if a.Released() {
		panic("meaning: allocate on a released arena")
	}
	a.mu.Lock()
	a.items = append(a.items, v)
	a.mu.Unlock()
	return Handle[T]{ptr: weak.Make(v), arena: a}
}

// Handle 是对 Arena 中存储的非拥有引用。
// 两个句柄相等当且仅当它们指向同一份存储。
type Handle[T any] struct {
	ptr   weak.Pointer[T]
	arena *Arena
}

// Get 返回句柄指向的存储，Arena 释放后调用会 panic
func (h Handle[T]) Get() *T {
	if h.arena == nil {
		panic("meaning: use of zero handle")
	}
	if h.arena.Released() {
		panic("meaning: handle outlived its arena")
	}
	p := h.ptr.Value()
	if p == nil {
		panic("meaning: handle outlived its arena")
	}
	return p
}

// Valid 判断句柄当前是否可以解引用
func (h Handle[T]) Valid() bool {
	return h.arena != nil && !h.arena.Released() && h.ptr.Value() != nil
}

// Arena 返回分配该句柄的 Arena
func (h Handle[T]) Arena() *Arena {
	return h.arena
}
