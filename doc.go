// Package treewalk is a lazy traversal engine for any tree-shaped data:
// plug in a node type that can list its children, and walk it
// breadth-first or depth-first, read-only or mutating in place.
//
// 🚀 What is treewalk?
//
//	A small, embeddable library that brings together:
//		• Order strategies: BreadthFirst and DepthFirst, a sealed two-member set
//		• A one-method capability contract: any type with Children() is walkable
//		• Read-only iteration: pull nodes one at a time, stop whenever you like
//		• Mutating iteration: a cursor protocol that lets you restructure a
//		  node's children before they are discovered and enqueued
//		• Eager drivers: Walk / WalkMut with context cancellation, depth
//		  limits and visit hooks
//
// ✨ Why choose treewalk?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Zero ownership – trees are borrowed, never copied or stored
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – add custom hooks (OnVisit, OnEnqueue…) for custom logic
//
// Everything is organized under two subpackages:
//
//	traverse/ — the engine: Order, Node capability, Iter, MutIter, Cursor, Walk
//	tree/     — a ready-made generic Node[T] (value + ordered children)
//
// Quick ASCII example:
//
//	      1
//	     / \
//	    2   3
//	   / \
//	  4   5
//
//	depth-first yields 1 2 4 5 3; breadth-first yields 1 2 3 4 5.
//
// Trees must be finite and acyclic: the engine performs no cycle
// detection, so a node reachable from itself makes traversal
// non-terminating. That contract is the caller's to keep.
//
//	go get github.com/katalvlaran/treewalk
package treewalk
