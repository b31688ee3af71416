package repository

import (
	"sync"

	"hospital-admin/internal/domain/mutation"
)

// memoryTable holds one entity list. Writers build a new list with the
// mutation package and swap it in under the write lock, so a list handed to
// a reader is never modified afterwards.
type memoryTable[T mutation.Identifiable] struct {
	mu   sync.RWMutex
	rows []T
	seq  *mutation.Sequence
}

func newMemoryTable[T mutation.Identifiable](prefix string, rows []T) *memoryTable[T] {
	return &memoryTable[T]{
		rows: rows,
		seq:  mutation.NewSequenceFor(prefix, rows),
	}
}

// snapshot returns the current list. Callers must not modify it.
func (t *memoryTable[T]) snapshot() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rows
}

func (t *memoryTable[T]) find(id string) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := mutation.Find(t.rows, id)
	if !ok {
		return nil, false
	}
	return &row, true
}

// insert assigns the next id through build and appends the record
func (t *memoryTable[T]) insert(build func(id string) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	row := build(t.seq.Next())
	t.rows = mutation.Append(t.rows, row)
	return row
}

func (t *memoryTable[T]) update(id string, apply func(T) T) (*T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	next, ok := mutation.Replace(t.rows, id, apply)
	if !ok {
		return nil, false
	}
	t.rows = next
	row, _ := mutation.Find(next, id)
	return &row, true
}

// updateAll applies apply to every row and returns the rows it replaced
func (t *memoryTable[T]) updateAll(apply func(T) T) []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.rows
	t.rows = mutation.ReplaceAll(t.rows, apply)
	return prev
}

func (t *memoryTable[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	next, ok := mutation.Remove(t.rows, id)
	if ok {
		t.rows = next
	}
	return ok
}
