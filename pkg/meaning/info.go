package meaning

// Info 描述一个 meaning 的运行时元信息
type Info struct {
	Name     string // meaning 名，如 "Circle"
	Package  string // 包名，如 "shapes"
	FullName string // 完整名，如 "shapes.Circle"
	Parent   *Info  // 父 meaning（根为 nil）
}

// String 返回完整名称
func (i *Info) String() string {
	return i.FullName
}

// IsSubmeaningOf 判断是否是 other 的（间接）子 meaning
func (i *Info) IsSubmeaningOf(other *Info) bool {
	for p := i.Parent; p != nil; p = p.Parent {
		if p == other {
			return true
		}
	}
	return false
}

// Ascending 返回从根到自身的元信息链
func (i *Info) Ascending() []*Info {
	var chain []*Info
	for p := i; p != nil; p = p.Parent {
		chain = append(chain, p)
	}
	for l, r := 0, len(chain)-1; l < r; l, r = l+1, r-1 {
		chain[l], chain[r] = chain[r], chain[l]
	}
	return chain
}
