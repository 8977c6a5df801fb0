// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package treap implements an in-memory ordered map backed by a treap: a
// binary search tree kept probabilistically balanced by assigning each node
// a random priority and maintaining a max-heap on priorities through
// rotations. Insert and Get run in O(log n) expected time with no explicit
// balance bookkeeping.
//
// [Map][K, V] orders keys by their natural Go ordering; [MapFunc][K, V]
// accepts an arbitrary comparison function. Neither is safe for concurrent
// use; a caller needing that must synchronize externally.
package treap

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

// A Map is an ordered map from K to V using K's standard Go ordering.
type Map[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// A MapFunc is an ordered map from K to V using an arbitrary comparison
// function. Use [NewFunc] to create one; the zero MapFunc has no comparison
// function and is not usable.
type MapFunc[K, V any] struct {
	root *node[K, V]
	size int
	cmp  func(K, K) int
}

// New returns an empty Map.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// NewFunc returns an empty MapFunc ordered by cmp, which must return a
// negative number, zero, or a positive number as a sorts before, equal to,
// or after b. cmp must be a valid total order over all keys used with the
// map; the map does not detect an inconsistent comparison and its behavior
// under one is undefined.
func NewFunc[K, V any](cmp func(a, b K) int) *MapFunc[K, V] {
	return &MapFunc[K, V]{cmp: cmp}
}

func compare[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Insert sets m[key] = val. If the key was already present, Insert returns
// the previous value and true; otherwise the zero value and false. Each call
// draws one random priority from the shared math/rand source.
func (m *Map[K, V]) Insert(key K, val V) (prev V, replaced bool) {
	m.root, prev, replaced = insert(m.root, key, val, compare[K])
	if !replaced {
		m.size++
	}
	return prev, replaced
}

// Insert sets m[key] = val. If the key was already present, Insert returns
// the previous value and true; otherwise the zero value and false.
func (m *MapFunc[K, V]) Insert(key K, val V) (prev V, replaced bool) {
	m.root, prev, replaced = insert(m.root, key, val, m.cmp)
	if !replaced {
		m.size++
	}
	return prev, replaced
}

func insert[K, V any](root *node[K, V], key K, val V, cmp func(K, K) int) (*node[K, V], V, bool) {
	priority := rand.Uint64()
	if root == nil {
		var zero V
		return newNode(key, val, priority), zero, false
	}
	return root.insert(key, val, priority, cmp)
}

// Get returns the value stored for key and whether it is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m.root == nil {
		var zero V
		return zero, false
	}
	return m.root.get(key, compare[K])
}

// Get returns the value stored for key and whether it is present.
func (m *MapFunc[K, V]) Get(key K) (V, bool) {
	if m.root == nil {
		var zero V
		return zero, false
	}
	return m.root.get(key, m.cmp)
}

// Len returns the number of distinct keys in the map.
func (m *Map[K, V]) Len() int { return m.size }

// Len returns the number of distinct keys in the map.
func (m *MapFunc[K, V]) Len() int { return m.size }
