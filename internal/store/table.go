package store

import "sync"

// table is an insertion-ordered id-to-record collection guarded by its own
// RWMutex. Methods do not lock; callers hold mu, which lets cross-table
// operations (cascade deletes) take several locks in the store's fixed
// global order and mutate under all of them.
type table[T any] struct {
	mu   sync.RWMutex
	id   func(T) string
	recs []T
	idx  map[string]int
}

func newTable[T any](id func(T) string) *table[T] {
	return &table[T]{id: id, idx: make(map[string]int)}
}

func (t *table[T]) get(id string) (T, bool) {
	if pos, ok := t.idx[id]; ok {
		return t.recs[pos], true
	}
	var zero T
	return zero, false
}

func (t *table[T]) has(id string) bool {
	_, ok := t.idx[id]
	return ok
}

func (t *table[T]) insert(rec T) {
	t.idx[t.id(rec)] = len(t.recs)
	t.recs = append(t.recs, rec)
}

func (t *table[T]) replace(rec T) {
	if pos, ok := t.idx[t.id(rec)]; ok {
		t.recs[pos] = rec
	}
}

func (t *table[T]) remove(id string) bool {
	pos, ok := t.idx[id]
	if !ok {
		return false
	}
	t.recs = append(t.recs[:pos], t.recs[pos+1:]...)
	t.reindex()
	return true
}

// removeWhere deletes every record matching pred and returns the removed
// records in their former insertion order.
func (t *table[T]) removeWhere(pred func(T) bool) []T {
	var removed []T
	kept := t.recs[:0]
	for _, rec := range t.recs {
		if pred(rec) {
			removed = append(removed, rec)
			continue
		}
		kept = append(kept, rec)
	}
	// Zero the tail so removed records do not linger in the backing array.
	for i := len(kept); i < len(t.recs); i++ {
		var zero T
		t.recs[i] = zero
	}
	t.recs = kept
	if len(removed) > 0 {
		t.reindex()
	}
	return removed
}

func (t *table[T]) reindex() {
	t.idx = make(map[string]int, len(t.recs))
	for pos, rec := range t.recs {
		t.idx[t.id(rec)] = pos
	}
}

func (t *table[T]) snapshot() []T {
	out := make([]T, len(t.recs))
	copy(out, t.recs)
	return out
}
