// Package dynlist provides DynamicList, a growable, index-addressable
// ordered sequence backed by a contiguous buffer.
//
// A DynamicList is not safe for concurrent mutation.
package dynlist

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
)

// DefaultCapacity is the capacity of a list built by New, and the capacity a
// zero-capacity list grows to on its first insert.
const DefaultCapacity = 10

var _ containers.Container = (*DynamicList[int])(nil)

type DynamicList[E any] struct {
	// len(buffer) is the capacity; only [0, size) holds elements
	buffer []E
	size   int
}

func New[E any]() *DynamicList[E] {
	return NewWithCapacity[E](DefaultCapacity)
}

// NewWithCapacity creates an empty list whose buffer holds capacity elements
// before it needs to grow. A capacity of 0 allocates nothing until the first
// insert; negative values are treated as 0.
func NewWithCapacity[E any](capacity int) *DynamicList[E] {
	if capacity < 0 {
		capacity = 0
	}
	return &DynamicList[E]{buffer: make([]E, capacity)}
}

// Add appends element at the end of the list, doubling the buffer first if it is full.
func (l *DynamicList[E]) Add(element E) {
	if l.size == len(l.buffer) {
		l.grow()
	}
	l.buffer[l.size] = element
	l.size++
}

// AddAt inserts element at index, shifting the elements at [index, size) one
// slot to the right. index may equal Size(), which appends.
func (l *DynamicList[E]) AddAt(index int, element E) error {
	if index < 0 || index > l.size {
		return newIndexOutOfRangeError(index, l.size)
	}
	if l.size == len(l.buffer) {
		l.grow()
	}
	copy(l.buffer[index+1:l.size+1], l.buffer[index:l.size])
	l.buffer[index] = element
	l.size++
	return nil
}

func (l *DynamicList[E]) Get(index int) (E, error) {
	if err := l.checkIndex(index); err != nil {
		var zero E
		return zero, err
	}
	return l.buffer[index], nil
}

func (l *DynamicList[E]) Set(index int, element E) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.buffer[index] = element
	return nil
}

// Delete removes the element at index, shifting the elements after it one
// slot to the left.
func (l *DynamicList[E]) Delete(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	copy(l.buffer[index:l.size-1], l.buffer[index+1:l.size])
	l.size--
	var zero E
	l.buffer[l.size] = zero
	return nil
}

// Clear drops all elements. The capacity is kept.
func (l *DynamicList[E]) Clear() {
	clear(l.buffer[:l.size])
	l.size = 0
}

func (l *DynamicList[E]) Size() int {
	return l.size
}

func (l *DynamicList[E]) Capacity() int {
	return len(l.buffer)
}

func (l *DynamicList[E]) Empty() bool {
	return l.size == 0
}

// Items returns a copy of the elements, so the caller cannot reach the list's buffer.
func (l *DynamicList[E]) Items() []E {
	list := make([]E, l.size)
	copy(list, l.buffer[:l.size])
	return list
}

// Values returns a copy of the elements as a slice of interface{}, as the gods container contract requires.
func (l *DynamicList[E]) Values() []interface{} {
	values := make([]interface{}, l.size)
	for i := 0; i < l.size; i++ {
		values[i] = l.buffer[i]
	}
	return values
}

func (l *DynamicList[E]) String() string {
	values := make([]string, 0, l.size)
	for i := 0; i < l.size; i++ {
		values = append(values, fmt.Sprintf("%v", l.buffer[i]))
	}
	return "DynamicList\n" + strings.Join(values, ", ")
}

func (l *DynamicList[E]) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return newIndexOutOfRangeError(index, l.size)
	}
	return nil
}

func (l *DynamicList[E]) grow() {
	newCapacity := len(l.buffer) * 2
	if newCapacity == 0 {
		newCapacity = DefaultCapacity
	}
	buffer := make([]E, newCapacity)
	copy(buffer, l.buffer[:l.size])
	l.buffer = buffer
}
