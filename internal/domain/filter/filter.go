// Package filter implements the list view filtering model: a record is shown
// when it satisfies every active predicate. Wildcard selectors match
// everything, and results keep the relative order of the input.
package filter

import "strings"

// Wildcard is the categorical selector value that matches every record
const Wildcard = "all"

// Predicate reports whether a record should be kept
type Predicate[T any] func(T) bool

// Apply returns the ordered subsequence of items matching all predicates.
// The input slice is never modified. A nil predicate is ignored. The result
// is non-nil even when nothing matches.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			result = append(result, item)
		}
	}
	return result
}

// Count returns how many items match all predicates
func Count[T any](items []T, preds ...Predicate[T]) int {
	n := 0
	for _, item := range items {
		if matchesAll(item, preds) {
			n++
		}
	}
	return n
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Text matches when any of the fields contains query, ignoring case.
// An empty query matches every record.
func Text[T any](query string, fields ...func(T) string) Predicate[T] {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)
	return func(item T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				return true
			}
		}
		return false
	}
}

// Category requires exact equality unless selector is empty or "all"
func Category[T any](selector string, field func(T) string) Predicate[T] {
	if IsWildcard(selector) {
		return nil
	}
	return func(item T) bool {
		return field(item) == selector
	}
}

// Date requires exact equality against a YYYY-MM-DD field unless selector is empty
func Date[T any](selector string, field func(T) string) Predicate[T] {
	if selector == "" {
		return nil
	}
	return func(item T) bool {
		return field(item) == selector
	}
}

// Flag keeps records whose flag is true when only is set; otherwise it matches all
func Flag[T any](only bool, flag func(T) bool) Predicate[T] {
	if !only {
		return nil
	}
	return flag
}

// IsWildcard reports whether selector disables a categorical filter
func IsWildcard(selector string) bool {
	return selector == "" || selector == Wildcard
}
