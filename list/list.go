// Package list implements a generic doubly linked list with bidirectional
// iteration, duplication, and rotation.
//
// It is a standalone container shipped alongside the string library; the
// string core does not depend on it. Unlike container/list it is typed via
// generics, exposes negative tail-relative indexing, and supports value-aware
// duplication and search through caller-supplied functions.
//
// The classical iteration pattern:
//
//	it := l.Iterator(list.Forward)
//	for node := it.Next(); node != nil; node = it.Next() {
//	    doSomethingWith(node.Value)
//	}
//
// It is valid to remove the node just returned by Next, but not any other
// node, while iterating.
//
// A List is not safe for concurrent mutation.
package list

// Direction selects where an Iterator starts and which way it walks.
type Direction int

const (
	// Forward iterates from head to tail.
	Forward Direction = iota
	// Backward iterates from tail to head.
	Backward
)

// Node is a single element of a List.
type Node[T any] struct {
	prev, next *Node[T]

	// Value is the payload carried by the node.
	Value T
}

// Prev returns the previous node, or nil at the head.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Next returns the next node, or nil at the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List is a doubly linked list. The zero value is ready to use:
//
//	var l list.List[int]
//	l.PushBack(42)
type List[T any] struct {
	head, tail *Node[T]
	length     int
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of nodes.
func (l *List[T]) Len() int {
	return l.length
}

// First returns the head node, or nil when the list is empty.
func (l *List[T]) First() *Node[T] {
	return l.head
}

// Last returns the tail node, or nil when the list is empty.
func (l *List[T]) Last() *Node[T] {
	return l.tail
}

// Empty removes every node. Values are dropped for the garbage collector; no
// destructor runs.
func (l *List[T]) Empty() {
	l.head = nil
	l.tail = nil
	l.length = 0
}

// PushFront adds a node holding value at the head and returns it.
func (l *List[T]) PushFront(value T) *Node[T] {
	node := &Node[T]{Value: value}

	if l.length == 0 {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.length++

	return node
}

// PushBack adds a node holding value at the tail and returns it.
func (l *List[T]) PushBack(value T) *Node[T] {
	node := &Node[T]{Value: value}

	if l.length == 0 {
		l.head = node
		l.tail = node
	} else {
		node.prev = l.tail
		l.tail.next = node
		l.tail = node
	}
	l.length++

	return node
}

// InsertAfter adds a node holding value immediately after old, which must
// belong to this list, and returns it.
func (l *List[T]) InsertAfter(old *Node[T], value T) *Node[T] {
	node := &Node[T]{Value: value, prev: old, next: old.next}
	if old == l.tail {
		l.tail = node
	}
	if node.next != nil {
		node.next.prev = node
	}
	old.next = node
	l.length++

	return node
}

// InsertBefore adds a node holding value immediately before old, which must
// belong to this list, and returns it.
func (l *List[T]) InsertBefore(old *Node[T], value T) *Node[T] {
	node := &Node[T]{Value: value, prev: old.prev, next: old}
	if old == l.head {
		l.head = node
	}
	if node.prev != nil {
		node.prev.next = node
	}
	old.prev = node
	l.length++

	return node
}

// Remove unlinks node from the list. The node must belong to this list.
func (l *List[T]) Remove(node *Node[T]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	node.prev = nil
	node.next = nil
	l.length--
}

// Search returns the first node, starting from the head, whose value
// satisfies match, or nil if none does.
func (l *List[T]) Search(match func(T) bool) *Node[T] {
	for node := l.head; node != nil; node = node.next {
		if match(node.Value) {
			return node
		}
	}

	return nil
}

// Index returns the node at the zero-based index, where 0 is the head.
// Negative indexes count from the tail, -1 being the last node. Returns nil
// when the index is out of range.
func (l *List[T]) Index(idx int) *Node[T] {
	var node *Node[T]

	if idx < 0 {
		idx = -idx - 1
		node = l.tail
		for ; idx > 0 && node != nil; idx-- {
			node = node.prev
		}
	} else {
		node = l.head
		for ; idx > 0 && node != nil; idx-- {
			node = node.next
		}
	}

	return node
}

// Rotate detaches the tail node and reinserts it at the head.
func (l *List[T]) Rotate() {
	if l.length <= 1 {
		return
	}

	tail := l.tail
	l.tail = tail.prev
	l.tail.next = nil

	l.head.prev = tail
	tail.prev = nil
	tail.next = l.head
	l.head = tail
}

// Dup returns a copy of the list. When copy is non-nil it produces each
// duplicated value; otherwise values are copied by assignment. The original
// list is never modified.
func (l *List[T]) Dup(copy func(T) T) *List[T] {
	dup := New[T]()

	for node := l.head; node != nil; node = node.next {
		value := node.Value
		if copy != nil {
			value = copy(value)
		}
		dup.PushBack(value)
	}

	return dup
}

// Join appends every node of other to the end of this list, leaving other
// empty.
func (l *List[T]) Join(other *List[T]) {
	if other.length == 0 {
		return
	}

	other.head.prev = l.tail
	if l.tail != nil {
		l.tail.next = other.head
	} else {
		l.head = other.head
	}
	l.tail = other.tail
	l.length += other.length

	other.Empty()
}
