package list

// Iterator walks a list in one direction. Obtain one from List.Iterator and
// advance it with Next; Rewind and RewindTail restart it from either end.
type Iterator[T any] struct {
	next      *Node[T]
	direction Direction
}

// Iterator returns an iterator positioned before the first node in the given
// direction.
func (l *List[T]) Iterator(direction Direction) *Iterator[T] {
	it := &Iterator[T]{direction: direction}
	if direction == Forward {
		it.next = l.head
	} else {
		it.next = l.tail
	}

	return it
}

// Next returns the next node and advances the iterator, or nil when the walk
// is done.
func (it *Iterator[T]) Next() *Node[T] {
	current := it.next
	if current != nil {
		if it.direction == Forward {
			it.next = current.next
		} else {
			it.next = current.prev
		}
	}

	return current
}

// Rewind repositions the iterator at the head, walking forward.
func (it *Iterator[T]) Rewind(l *List[T]) {
	it.next = l.head
	it.direction = Forward
}

// RewindTail repositions the iterator at the tail, walking backward.
func (it *Iterator[T]) RewindTail(l *List[T]) {
	it.next = l.tail
	it.direction = Backward
}
