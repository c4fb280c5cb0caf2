// Package sets provides an abstract Set interface.
//
// In computer science, a set is an abstract data type that can store certain values, without any particular order, and no repeated values.
//
// Reference: https://en.wikipedia.org/wiki/Set_(abstract_data_type)
package sets

import "mlib.com/relate/containers"

// Set interface that all sets implement
type Set[T comparable] interface {
	Add(elements ...T)
	Remove(elements ...T)
	Contains(elements ...T) bool

	containers.Container[T]
	// Empty() bool
	// Size() int
	// Clear()
	// Values() []interface{}
	// String() string
}
