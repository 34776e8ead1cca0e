// Package order resolves comparator names given on the command line.
package order

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/utils"
)

const (
	Natural    = "natural"
	Comparator = "comparator"
	Reverse    = "reverse"
	Fold       = "fold"
	Length     = "length"
)

var UnknownOrderError = fmt.Errorf("unknown order")

type UnknownOrderErrorWithDetails struct {
	Details string
	Name    string
}

func (e *UnknownOrderErrorWithDetails) Error() string {
	return e.Details
}

func (e *UnknownOrderErrorWithDetails) Unwrap() error {
	return UnknownOrderError
}

func unknown(name string, known ...string) error {
	return &UnknownOrderErrorWithDetails{
		Details: fmt.Sprintf("unknown order %q, expected one of: %s", name, strings.Join(known, ", ")),
		Name:    name,
	}
}

// Typed adapts an untyped gods comparator to elements of type E.
func Typed[E any](c utils.Comparator) func(a, b E) int {
	return func(a, b E) int {
		return c(a, b)
	}
}

func reversed[E any](compare func(a, b E) int) func(a, b E) int {
	return func(a, b E) int {
		return compare(b, a)
	}
}

// Strings returns the comparator for name. A nil comparator with a nil error
// means natural order.
func Strings(name string) (func(a, b string) int, error) {
	byValue := Typed[string](utils.StringComparator)
	switch strings.ToLower(name) {
	case Natural, "":
		return nil, nil
	case Comparator:
		return byValue, nil
	case Reverse:
		return reversed(byValue), nil
	case Fold:
		return func(a, b string) int {
			if c := byValue(strings.ToLower(a), strings.ToLower(b)); c != 0 {
				return c
			}
			return byValue(a, b)
		}, nil
	case Length:
		return func(a, b string) int {
			if c := utils.IntComparator(len(a), len(b)); c != 0 {
				return c
			}
			return byValue(a, b)
		}, nil
	}
	return nil, unknown(name, Natural, Comparator, Reverse, Fold, Length)
}

// Int64s is Strings for numbers.
func Int64s(name string) (func(a, b int64) int, error) {
	byValue := Typed[int64](utils.Int64Comparator)
	switch strings.ToLower(name) {
	case Natural, "":
		return nil, nil
	case Comparator:
		return byValue, nil
	case Reverse:
		return reversed(byValue), nil
	}
	return nil, unknown(name, Natural, Comparator, Reverse)
}
