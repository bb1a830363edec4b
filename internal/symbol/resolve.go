package symbol

import "fmt"

// AscendingMeaningList 返回从根到 m 的 meaning 列表（含 m 本身）
func AscendingMeaningList(m Symbol) []Symbol {
	m.expect(KindMeaning)
	limit := m.h.arena.Len()
	var list []Symbol
	for cur := m; !cur.IsZero(); cur = cur.Inherits() {
		if len(list) > limit {
			panic(fmt.Sprintf("symbol: inheritance cycle through %q", m.Name()))
		}
		list = append(list, cur)
	}
	for l, r := 0, len(list)-1; l < r; l, r = l+1, r-1 {
		list[l], list[r] = list[r], list[l]
	}
	return list
}

// IndexOf 返回 m 在列表中的下标，不存在时为 -1
func IndexOf(list []Symbol, m Symbol) int {
	for i, s := range list {
		if s == m {
			return i
		}
	}
	return -1
}

// LookupMethod 从 m 开始向上查找最近定义 name 的方法
func LookupMethod(m Symbol, name string) (Symbol, bool) {
	asc := AscendingMeaningList(m)
	for i := len(asc) - 1; i >= 0; i-- {
		if method, ok := asc[i].Methods().Get(name); ok {
			return method, true
		}
	}
	return Symbol{}, false
}

// LookupField 从 m 开始向上查找最近声明 name 的字段及其所属 meaning
func LookupField(m Symbol, name string) (field, owner Symbol, ok bool) {
	asc := AscendingMeaningList(m)
	for i := len(asc) - 1; i >= 0; i-- {
		if f, found := asc[i].Fields().Get(name); found {
			return f, asc[i], true
		}
	}
	return Symbol{}, Symbol{}, false
}
