package meaning

import (
	"sync"
	"testing"

	"github.com/kr/pretty"
)

type testLayer struct {
	count Value[int]
	tags  *Ref[[]string]
}

func TestAllocateGet(t *testing.T) {
	a := NewArena()
	h := Allocate(a, &testLayer{count: NewValue(3), tags: NewRef([]string{"a"})})
	if a.Len() != 1 {
		t.Fatalf("len = %d, want 1", a.Len())
	}
	if got := h.Get().count.Get(); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
	h.Get().count.Set(7)
	if got := h.Get().count.Get(); got != 7 {
		t.Errorf("count after set = %d, want 7", got)
	}
	if !h.Valid() {
		t.Error("expected handle to be valid")
	}
}

func TestHandleIdentity(t *testing.T) {
	a := NewArena()
	l1 := &testLayer{}
	l2 := &testLayer{}
	h1 := Allocate(a, l1)
	h2 := Allocate(a, l2)
	copy1 := h1
	if h1 != copy1 {
		t.Error("copies of a handle must compare equal")
	}
	if h1 == h2 {
		t.Error("handles to distinct storage must differ")
	}
}

func TestHandleAfterRelease(t *testing.T) {
	a := NewArena()
	h := Allocate(a, &testLayer{})
	a.Release()
	if h.Valid() {
		t.Error("expected handle to be invalid after release")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on released arena")
		}
	}()
	h.Get()
}

func TestZeroHandlePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on zero handle")
		}
	}()
	var h Handle[testLayer]
	h.Get()
}

func TestRefCell(t *testing.T) {
	r := NewRef([]string{"x"})
	old := r.Replace([]string{"y", "z"})
	if diff := pretty.Diff(old, []string{"x"}); len(diff) > 0 {
		t.Errorf("old value diff: %v", diff)
	}
	r.Update(func(v *[]string) { *v = append(*v, "w") })
	if diff := pretty.Diff(r.Borrow(), []string{"y", "z", "w"}); len(diff) > 0 {
		t.Errorf("borrow diff: %v", diff)
	}
}

func TestRefConcurrent(t *testing.T) {
	r := NewRef(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Update(func(v *int) { *v++ })
			_ = r.Borrow()
		}()
	}
	wg.Wait()
	if got := r.Borrow(); got != 50 {
		t.Errorf("count = %d, want 50", got)
	}
}

func TestValueDefaultRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		init int
		set  *int
		want int
	}{
		{"default", 42, nil, 42},
		{"overwritten", 42, intPtr(9), 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewValue(tt.init)
			if tt.set != nil {
				c.Set(*tt.set)
			}
			if got := c.Get(); got != tt.want {
				t.Errorf("got = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	root := &Info{Name: "Shape", Package: "shapes", FullName: "shapes.Shape"}
	mid := &Info{Name: "Circle", Package: "shapes", FullName: "shapes.Circle", Parent: root}
	leaf := &Info{Name: "Ring", Package: "shapes", FullName: "shapes.Ring", Parent: mid}

	if !leaf.IsSubmeaningOf(root) || !leaf.IsSubmeaningOf(mid) {
		t.Error("expected Ring to be a submeaning of Shape and Circle")
	}
	if root.IsSubmeaningOf(leaf) || leaf.IsSubmeaningOf(leaf) {
		t.Error("unexpected submeaning relation")
	}
	var names []string
	for _, i := range leaf.Ascending() {
		names = append(names, i.String())
	}
	if diff := pretty.Diff(names, []string{"shapes.Shape", "shapes.Circle", "shapes.Ring"}); len(diff) > 0 {
		t.Errorf("ascending diff: %v", diff)
	}
}

func intPtr(v int) *int { return &v }
