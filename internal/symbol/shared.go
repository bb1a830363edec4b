package symbol

import "iter"

// SharedMap 是按插入顺序遍历的映射。
// 它总是以指针形式在多个符号句柄之间共享，只支持追加和更新。
type SharedMap[K comparable, V any] struct {
	keys []K
	m    map[K]V
}

// NewSharedMap 创建一个空的 SharedMap
func NewSharedMap[K comparable, V any]() *SharedMap[K, V] {
	return &SharedMap[K, V]{m: make(map[K]V)}
}

// Get 查找键
func (s *SharedMap[K, V]) Get(k K) (V, bool) {
	v, ok := s.m[k]
	return v, ok
}

// Has 判断键是否存在
func (s *SharedMap[K, V]) Has(k K) bool {
	_, ok := s.m[k]
	return ok
}

// Set 插入或更新，更新时保留原有顺序
func (s *SharedMap[K, V]) Set(k K, v V) {
	if _, ok := s.m[k]; !ok {
		s.keys = append(s.keys, k)
	}
	s.m[k] = v
}

// Len 返回条目数
func (s *SharedMap[K, V]) Len() int {
	return len(s.keys)
}

// Keys 返回按插入顺序排列的键
func (s *SharedMap[K, V]) Keys() []K {
	out := make([]K, len(s.keys))
	copy(out, s.keys)
	return out
}

// Values 返回按插入顺序排列的值
func (s *SharedMap[K, V]) Values() []V {
	out := make([]V, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.m[k])
	}
	return out
}

// All 按插入顺序遍历全部条目
func (s *SharedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range s.keys {
			if !yield(k, s.m[k]) {
				return
			}
		}
	}
}

// SharedList 是只追加的共享列表
type SharedList[T any] struct {
	items []T
}

// NewSharedList 创建一个空列表
func NewSharedList[T any]() *SharedList[T] {
	return &SharedList[T]{}
}

// Append 追加元素
func (l *SharedList[T]) Append(v T) {
	l.items = append(l.items, v)
}

// Len 返回元素个数
func (l *SharedList[T]) Len() int {
	return len(l.items)
}

// At 返回第 i 个元素
func (l *SharedList[T]) At(i int) T {
	return l.items[i]
}

// Items 返回元素的副本
func (l *SharedList[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
