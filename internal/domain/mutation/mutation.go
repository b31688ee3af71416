// Package mutation applies create, update and delete operations to entity
// lists. Every operation returns a new list and leaves its input untouched.
// Missing ids are not errors: the input list is returned as is and the
// boolean result reports whether anything changed.
package mutation

// Identifiable is implemented by every stored record
type Identifiable interface {
	GetID() string
}

// Find returns the record with id
func Find[T Identifiable](list []T, id string) (T, bool) {
	for _, item := range list {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Append returns a new list with item at the end
func Append[T any](list []T, item T) []T {
	next := make([]T, len(list), len(list)+1)
	copy(next, list)
	return append(next, item)
}

// Replace returns a new list where the record with id is replaced by
// update(record). When id is absent the input list is returned unchanged.
func Replace[T Identifiable](list []T, id string, update func(T) T) ([]T, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	next := make([]T, len(list))
	copy(next, list)
	next[idx] = update(list[idx])
	return next, true
}

// ReplaceAll returns a new list with update applied to every record
func ReplaceAll[T any](list []T, update func(T) T) []T {
	next := make([]T, len(list))
	for i, item := range list {
		next[i] = update(item)
	}
	return next
}

// Remove returns a new list without the record with id. When id is absent the
// input list is returned unchanged.
func Remove[T Identifiable](list []T, id string) ([]T, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	next := make([]T, 0, len(list)-1)
	next = append(next, list[:idx]...)
	return append(next, list[idx+1:]...), true
}

func indexOf[T Identifiable](list []T, id string) int {
	for i, item := range list {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}
