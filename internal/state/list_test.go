package state

import "testing"

type item struct {
	id   int
	text string
}

func (i item) Key() int { return i.id }

func items(ids ...int) []item {
	out := make([]item, len(ids))
	for i, id := range ids {
		out[i] = item{id: id}
	}
	return out
}

func TestList_NextClamps(t *testing.T) {
	l := NewList[item, int](items(1, 2, 3)...)
	if l.Cursor() != -1 {
		t.Fatalf("new list cursor = %d, want -1", l.Cursor())
	}
	want := []int{0, 1, 2, 2, 2}
	for i, w := range want {
		l.Next()
		if l.Cursor() != w {
			t.Errorf("after Next #%d cursor = %d, want %d", i+1, l.Cursor(), w)
		}
	}
}

func TestList_PreviousClamps(t *testing.T) {
	l := NewList[item, int](items(1, 2, 3)...)
	l.Previous()
	if l.Cursor() != 0 {
		t.Fatalf("Previous with no selection: cursor = %d, want 0", l.Cursor())
	}
	l.Next()
	l.Next()
	want := []int{1, 0, 0}
	for i, w := range want {
		l.Previous()
		if l.Cursor() != w {
			t.Errorf("after Previous #%d cursor = %d, want %d", i+1, l.Cursor(), w)
		}
	}
}

func TestList_Empty(t *testing.T) {
	l := NewList[item, int]()
	l.Next()
	l.Previous()
	if l.Cursor() != -1 {
		t.Errorf("cursor = %d, want -1", l.Cursor())
	}
	if _, ok := l.Selected(); ok {
		t.Error("empty list should have no selection")
	}
}

func TestList_SelectByKey(t *testing.T) {
	l := NewList[item, int](items(1, 2, 3)...)
	if !l.SelectByKey(3) {
		t.Fatal("SelectByKey(3) = false")
	}
	if l.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", l.Cursor())
	}
	if l.SelectByKey(9) {
		t.Error("SelectByKey(9) = true")
	}
	if l.Cursor() != 2 {
		t.Errorf("cursor after miss = %d, want 2", l.Cursor())
	}
}

func TestList_Unselect(t *testing.T) {
	l := NewList[item, int](items(1, 2)...)
	l.Next()
	l.Unselect()
	if _, ok := l.Selected(); ok {
		t.Error("Unselect should clear the selection")
	}
}

func TestList_Set(t *testing.T) {
	l := NewList[item, int](items(1, 2)...)
	l.Next()
	l.Set(items(4, 5))
	if l.Cursor() != -1 || l.Len() != 2 {
		t.Errorf("cursor = %d len = %d, want -1 and 2", l.Cursor(), l.Len())
	}
}

func TestList_Replace(t *testing.T) {
	tests := []struct {
		name      string
		before    []item
		selectKey int
		after     []item
		want      int
	}{
		{"same key moved", items(1, 2, 3), 3, items(3, 1, 2), 0},
		{"key gone clamps index", items(1, 2, 3), 3, items(1, 2), 1},
		{"key gone index still valid", items(1, 2, 3), 2, items(1, 3, 4), 1},
		{"emptied", items(1, 2), 2, nil, -1},
		{"no selection stays none", items(1, 2), 0, items(1, 2), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList[item, int](tt.before...)
			if tt.selectKey != 0 {
				l.SelectByKey(tt.selectKey)
			}
			l.Replace(tt.after)
			if l.Cursor() != tt.want {
				t.Errorf("cursor = %d, want %d", l.Cursor(), tt.want)
			}
		})
	}
}

func TestList_Reconcile(t *testing.T) {
	l := NewList[item, int](item{1, "A"}, item{2, "B"})
	l.SelectByKey(2)
	l.Reconcile([]item{{1, "A2"}, {3, "C"}}, Replacing[item])

	want := []item{{1, "A2"}, {2, "B"}, {3, "C"}}
	got := l.Items()
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("items[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	if sel, _ := l.Selected(); sel.id != 2 {
		t.Errorf("selected = %d, want 2", sel.id)
	}
}

func TestList_ReconcileMerge(t *testing.T) {
	l := NewList[item, int](item{1, "old"})
	keepOld := func(old, _ item) item { return old }
	l.Reconcile([]item{{1, "new"}}, keepOld)
	if l.Items()[0].text != "old" {
		t.Errorf("merge func not applied: %+v", l.Items())
	}
}
