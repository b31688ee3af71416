package mutation

import (
	"strconv"
	"strings"
	"sync"
)

// Sequence hands out ids of the form {prefix}{n}. Numbers only grow, so an
// id is never handed out twice even after records are deleted.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	last   int
}

// NewSequence creates a sequence that continues after the highest numeric
// suffix found in existing ids carrying prefix.
func NewSequence(prefix string, existing ...string) *Sequence {
	seq := &Sequence{prefix: prefix}
	for _, id := range existing {
		seq.Observe(id)
	}
	return seq
}

// NewSequenceFor seeds a sequence from the ids of a record list
func NewSequenceFor[T Identifiable](prefix string, list []T) *Sequence {
	seq := NewSequence(prefix)
	for _, item := range list {
		seq.Observe(item.GetID())
	}
	return seq
}

// Next returns the next unused id
func (s *Sequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.prefix + strconv.Itoa(s.last)
}

// Observe raises the counter so that id will not be generated again
func (s *Sequence) Observe(id string) {
	if !strings.HasPrefix(id, s.prefix) {
		return
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, s.prefix))
	if err != nil {
		return
	}
	s.mu.Lock()
	if n > s.last {
		s.last = n
	}
	s.mu.Unlock()
}

// Prefix returns the id prefix
func (s *Sequence) Prefix() string {
	return s.prefix
}
