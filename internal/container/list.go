// Package container provides List, a generic singly-linked sequence that owns
// the values stored in it.
//
// Values removed from a List (by PopFront, PopBack or Clear) are handed to the
// release hook installed with WithRelease. That hook is where an owner frees
// or un-tracks whatever the value represents.
package container

import (
	"errors"
	"iter"
)

// ErrEmpty is returned by pops and peeks on an empty list.
var ErrEmpty = errors.New("container is empty")

type element[T any] struct {
	value T
	next  *element[T]
}

// List is an ordered sequence with O(1) insertion at both ends, O(1) removal
// at the front and O(n) removal at the back. The zero value is an empty list
// with no release hook.
type List[T any] struct {
	head    *element[T]
	tail    *element[T]
	size    int
	release func(T)
}

// Option configures a List.
type Option[T any] func(*List[T])

// WithRelease installs fn as the hook called with every value the list
// removes.
func WithRelease[T any](fn func(T)) Option[T] {
	return func(l *List[T]) {
		l.release = fn
	}
}

// New creates an empty list.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// PushFront inserts v before the current head.
func (l *List[T]) PushFront(v T) {
	e := &element[T]{value: v, next: l.head}
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.size++
}

// PushBack inserts v after the current tail.
func (l *List[T]) PushBack(v T) {
	e := &element[T]{value: v}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.size++
}

// PopFront removes the head and releases its value.
func (l *List[T]) PopFront() error {
	if l.head == nil {
		return ErrEmpty
	}

	e := l.head
	l.head = e.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	l.drop(e)
	return nil
}

// PopBack removes the tail and releases its value. Elements only link
// forward, so this walks from the head to find the new tail.
func (l *List[T]) PopBack() error {
	if l.tail == nil {
		return ErrEmpty
	}

	e := l.tail
	if l.head == l.tail {
		l.head, l.tail = nil, nil
	} else {
		prev := l.head
		for prev.next != l.tail {
			prev = prev.next
		}
		prev.next = nil
		l.tail = prev
	}
	l.size--
	l.drop(e)
	return nil
}

// PeekFront returns the head value without removing it.
func (l *List[T]) PeekFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.head.value, nil
}

// PeekBack returns the tail value without removing it.
func (l *List[T]) PeekBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.tail.value, nil
}

// Clear pops every element from the front, releasing each value in order.
func (l *List[T]) Clear() {
	for !l.IsEmpty() {
		_ = l.PopFront()
	}
}

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.size
}

// All returns an iterator over the values from head to tail. Each call starts
// a fresh pass.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Values returns the values from head to tail as a new slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func (l *List[T]) drop(e *element[T]) {
	v := e.value
	var zero T
	e.value = zero
	e.next = nil
	if l.release != nil {
		l.release(v)
	}
}
