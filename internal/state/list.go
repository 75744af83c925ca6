package state

// Keyed is implemented by list items that carry a stable identity.
type Keyed[K comparable] interface {
	Key() K
}

// List is an ordered collection with an optional cursor. Movement clamps at
// both ends; it never wraps.
type List[T Keyed[K], K comparable] struct {
	items  []T
	cursor int // -1 when nothing is selected
}

// NewList returns a list holding items with no selection.
func NewList[T Keyed[K], K comparable](items ...T) *List[T, K] {
	return &List[T, K]{items: items, cursor: -1}
}

// Items returns the current items. Callers must not modify the slice.
func (l *List[T, K]) Items() []T { return l.items }

// Len returns the number of items.
func (l *List[T, K]) Len() int { return len(l.items) }

// Cursor returns the selected index, or -1.
func (l *List[T, K]) Cursor() int { return l.cursor }

// Selected returns the item under the cursor.
func (l *List[T, K]) Selected() (T, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[l.cursor], true
}

// Next moves the cursor down one item. With no selection it selects the
// first item; on the last item it stays put.
func (l *List[T, K]) Next() {
	if len(l.items) == 0 {
		return
	}
	if l.cursor < 0 {
		l.cursor = 0
		return
	}
	if l.cursor < len(l.items)-1 {
		l.cursor++
	}
}

// Previous moves the cursor up one item. With no selection it selects the
// first item; on the first item it stays put.
func (l *List[T, K]) Previous() {
	if len(l.items) == 0 {
		return
	}
	if l.cursor <= 0 {
		l.cursor = 0
		return
	}
	l.cursor--
}

// Unselect clears the cursor.
func (l *List[T, K]) Unselect() { l.cursor = -1 }

// SelectByKey moves the cursor to the first item with key k. It reports
// whether one was found; the cursor is unchanged otherwise.
func (l *List[T, K]) SelectByKey(k K) bool {
	for i, it := range l.items {
		if it.Key() == k {
			l.cursor = i
			return true
		}
	}
	return false
}

// Set replaces all items and clears the selection.
func (l *List[T, K]) Set(items []T) {
	l.items = items
	l.cursor = -1
}

// Replace swaps in items while trying to keep the selection: first by key,
// then by clamping the old index into range. An empty list ends up with no
// selection.
func (l *List[T, K]) Replace(items []T) {
	prev, had := l.Selected()
	old := l.cursor
	l.items = items
	l.cursor = -1
	if !had || len(items) == 0 {
		return
	}
	if l.SelectByKey(prev.Key()) {
		return
	}
	l.cursor = min(old, len(items)-1)
}

// Reconcile merges fresh into the list. Items whose key already exists are
// replaced in place by merge(old, fresh); unseen keys are appended in the
// order they appear in fresh; existing items absent from fresh are kept.
// The cursor stays on the same index.
func (l *List[T, K]) Reconcile(fresh []T, merge func(old, fresh T) T) {
	index := make(map[K]int, len(l.items))
	for i, it := range l.items {
		index[it.Key()] = i
	}
	for _, f := range fresh {
		if i, ok := index[f.Key()]; ok {
			l.items[i] = merge(l.items[i], f)
			continue
		}
		index[f.Key()] = len(l.items)
		l.items = append(l.items, f)
	}
}

// Replacing is a merge func for Reconcile that takes the fresh item.
func Replacing[T any](_, fresh T) T { return fresh }
