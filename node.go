// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package treap

// node is a single entry in the treap. Child links are exclusively owned:
// no node is reachable through more than one parent.
type node[K, V any] struct {
	key      K
	val      V
	left     *node[K, V]
	right    *node[K, V]
	priority uint64
}

func newNode[K, V any](key K, val V, priority uint64) *node[K, V] {
	return &node[K, V]{key: key, val: val, priority: priority}
}

// get descends the subtree rooted at n looking for key. cmp must be the
// same total order the tree was built with.
func (n *node[K, V]) get(key K, cmp func(K, K) int) (V, bool) {
	switch c := cmp(key, n.key); {
	case c == 0:
		return n.val, true
	case c < 0:
		if n.left == nil {
			var zero V
			return zero, false
		}
		return n.left.get(key, cmp)
	default:
		if n.right == nil {
			var zero V
			return zero, false
		}
		return n.right.get(key, cmp)
	}
}

// insert places key in the subtree rooted at n and returns the new subtree
// root so the caller can relink it. If the key was already present its value
// is replaced, the previous value is returned with replaced = true, and the
// node's priority is raised to the larger of the old and new draws (never
// lowered, since lowering could itself break the heap order). The stored key
// is left untouched on replacement.
//
// Heap repair happens on the way back up: after the child link is updated,
// a child carrying a higher priority than n is rotated into n's place. Each
// stack frame applies at most one rotation; the frame above re-checks after
// this one returns, which is how a high-priority leaf bubbles to the root.
func (n *node[K, V]) insert(key K, val V, priority uint64, cmp func(K, K) int) (root *node[K, V], prev V, replaced bool) {
	switch c := cmp(key, n.key); {
	case c == 0:
		prev, n.val = n.val, val
		if priority > n.priority {
			n.priority = priority
		}
		return n, prev, true
	case c < 0:
		if n.left == nil {
			n.left = newNode(key, val, priority)
		} else {
			n.left, prev, replaced = n.left.insert(key, val, priority, cmp)
		}
		root = n
		if n.left.priority > n.priority {
			root = n.rotateRight()
		}
		return root, prev, replaced
	default:
		if n.right == nil {
			n.right = newNode(key, val, priority)
		} else {
			n.right, prev, replaced = n.right.insert(key, val, priority, cmp)
		}
		root = n
		if n.right.priority > n.priority {
			root = n.rotateLeft()
		}
		return root, prev, replaced
	}
}

// rotateRight lifts n's left child into n's place and returns it:
//
//	    y             x
//	   / \           / \
//	  x   c   -->   a   y
//	 / \               / \
//	a   b             b   c
//
// In-order key sequence is unchanged, so the BST order survives. No-op if
// there is no left child.
func (n *node[K, V]) rotateRight() *node[K, V] {
	x := n.left
	if x == nil {
		return n
	}
	n.left = x.right
	x.right = n
	return x
}

// rotateLeft is the mirror image of rotateRight:
//
//	  y                 x
//	 / \               / \
//	a   x     -->     y   c
//	   / \           / \
//	  b   c         a   b
func (n *node[K, V]) rotateLeft() *node[K, V] {
	x := n.right
	if x == nil {
		return n
	}
	n.right = x.left
	x.left = n
	return x
}
