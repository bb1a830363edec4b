package meaning

import "sync"

// Value 是按值复制的字段单元
type Value[T any] struct {
	v T
}

// NewValue 创建一个带初始值的字段单元
func NewValue[T any](v T) Value[T] {
	return Value[T]{v: v}
}

// Get 返回当前值的副本
func (c *Value[T]) Get() T {
	return c.v
}

// Set 覆盖当前值
func (c *Value[T]) Set(v T) {
	c.v = v
}

// Ref 是可共享、带读写锁的字段单元，用于 ref 字段
type Ref[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewRef 创建一个带初始值的 Ref 单元
func NewRef[T any](v T) *Ref[T] {
	return &Ref[T]{v: v}
}

// Borrow 在读锁下返回当前值
func (c *Ref[T]) Borrow() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v
}

// Replace 写入新值并返回旧值
func (c *Ref[T]) Replace(v T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.v
	c.v = v
	return old
}

// Update 在写锁下原地修改当前值
func (c *Ref[T]) Update(fn func(v *T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.v)
}
