package ring

import "testing"

func TestBuffer_AppendBelowCap(t *testing.T) {
	b := New[int](5)
	for i := 1; i <= 3; i++ {
		b.Append(i)
	}
	if b.Len() != 3 {
		t.Errorf("Len = %d, want 3", b.Len())
	}
	items := b.Items()
	for i, v := range []int{1, 2, 3} {
		if items[i] != v {
			t.Errorf("items[%d] = %d, want %d", i, items[i], v)
		}
	}
}

func TestBuffer_EvictsOldest(t *testing.T) {
	b := New[int](20)
	for i := 1; i <= 25; i++ {
		b.Append(i)
	}
	if b.Len() != 20 {
		t.Fatalf("Len = %d, want 20", b.Len())
	}
	items := b.Items()
	if items[0] != 6 {
		t.Errorf("oldest = %d, want 6", items[0])
	}
	if items[19] != 25 {
		t.Errorf("newest = %d, want 25", items[19])
	}
	// Oldest-first order preserved throughout.
	for i := 1; i < len(items); i++ {
		if items[i] != items[i-1]+1 {
			t.Fatalf("order broken at %d: %v", i, items)
		}
	}
}

func TestBuffer_Last(t *testing.T) {
	b := New[string](2)
	if _, ok := b.Last(); ok {
		t.Error("Last on empty buffer should report false")
	}
	b.Append("a")
	b.Append("b")
	b.Append("c")
	last, ok := b.Last()
	if !ok || last != "c" {
		t.Errorf("Last = %q/%v, want c/true", last, ok)
	}
}

func TestFromSlice_TrimsToCapacity(t *testing.T) {
	b := FromSlice(3, []int{1, 2, 3, 4, 5})
	items := b.Items()
	if len(items) != 3 {
		t.Fatalf("Len = %d, want 3", len(items))
	}
	for i, v := range []int{3, 4, 5} {
		if items[i] != v {
			t.Errorf("items[%d] = %d, want %d", i, items[i], v)
		}
	}
}

func TestNew_MinimumCapacity(t *testing.T) {
	b := New[int](0)
	b.Append(1)
	b.Append(2)
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
	last, _ := b.Last()
	if last != 2 {
		t.Errorf("Last = %d, want 2", last)
	}
}

func TestBuffer_ItemsIsACopy(t *testing.T) {
	b := New[int](3)
	b.Append(1)
	items := b.Items()
	items[0] = 99
	got := b.Items()
	if got[0] != 1 {
		t.Errorf("internal state mutated through Items copy: %d", got[0])
	}
}
