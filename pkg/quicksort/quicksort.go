// Package quicksort sorts any index-addressable list in place.
//
// The sort only reaches the elements through the List contract (Get, Set
// and Size), so it works the same against any container that honours it.
//
// # Algorithm
//
// Quicksort with the Lomuto partition scheme: the pivot is the rightmost
// element of the current range, one left-to-right scan moves every element
// that is <= pivot into the low partition, and the pivot is then swapped into
// its final position. The sort is not stable. Worst case is O(n²) (for example
// already sorted input), average O(n log n).
//
// Recursion always descends into the smaller partition and loops over the
// larger one, which keeps the stack depth at O(log n) even when the number of
// comparisons degrades.
package quicksort

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// List is the access contract the sort needs.
type List[E any] interface {
	Get(index int) (E, error)
	Set(index int, element E) error
	Size() int
}

// Tracer receives one call per partition step, after the pivot has been
// moved to its final index.
type Tracer[E any] interface {
	Partition(left, right, pivotIndex int, pivot E)
}

// Sort sorts list in natural (ascending) order. Floating point NaNs sort
// before every other value.
func Sort[E constraints.Ordered](list List[E]) error {
	return SortFunc(list, cmp.Compare[E])
}

// SortFunc sorts list in the order defined by compare, which returns a negative
// number when a < b, zero when a == b and a positive number when a > b.
// compare must be a total order; it is not checked.
func SortFunc[E any](list List[E], compare func(a, b E) int) error {
	return SortFuncTraced(list, compare, nil)
}

// SortFuncTraced is SortFunc that reports every partition step to tracer.
// tracer may be nil.
//
// An error returned by the list aborts the sort and is returned unchanged;
// the list is then partially sorted.
func SortFuncTraced[E any](list List[E], compare func(a, b E) int, tracer Tracer[E]) error {
	s := &sorter[E]{list: list, compare: compare, tracer: tracer}
	return s.quickSort(0, list.Size()-1)
}

type sorter[E any] struct {
	list    List[E]
	compare func(a, b E) int
	tracer  Tracer[E]
}

func (s *sorter[E]) quickSort(left, right int) error {
	for left < right {
		p, err := s.partition(left, right)
		if err != nil {
			return err
		}
		if p-left < right-p {
			if err := s.quickSort(left, p-1); err != nil {
				return err
			}
			left = p + 1
		} else {
			if err := s.quickSort(p+1, right); err != nil {
				return err
			}
			right = p - 1
		}
	}
	return nil
}

// partition returns the final index of the pivot taken from right.
func (s *sorter[E]) partition(left, right int) (int, error) {
	pivot, err := s.list.Get(right)
	if err != nil {
		return 0, err
	}
	i := left - 1
	for j := left; j < right; j++ {
		v, err := s.list.Get(j)
		if err != nil {
			return 0, err
		}
		if s.compare(v, pivot) <= 0 {
			i++
			if err := s.swap(i, j); err != nil {
				return 0, err
			}
		}
	}
	p := i + 1
	if err := s.swap(p, right); err != nil {
		return 0, err
	}
	if s.tracer != nil {
		s.tracer.Partition(left, right, p, pivot)
	}
	return p, nil
}

func (s *sorter[E]) swap(i, j int) error {
	if i == j {
		return nil
	}
	a, err := s.list.Get(i)
	if err != nil {
		return err
	}
	b, err := s.list.Get(j)
	if err != nil {
		return err
	}
	if err := s.list.Set(i, b); err != nil {
		return err
	}
	return s.list.Set(j, a)
}
