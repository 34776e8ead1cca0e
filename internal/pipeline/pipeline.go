// Package pipeline applies the operations requested on the command line to a DynamicList.
package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iliodor1/own-array-list/pkg/dynlist"
)

type Insert[E any] struct {
	Index int
	Value E
}

type Options[E any] struct {
	Capacity int
	// applied in order, after the items have been appended
	Inserts []Insert[E]
	// applied in order, after the inserts
	Deletes []int
	// nil leaves the list in its current order
	Sorter func(list *dynlist.DynamicList[E]) error
}

func Run[E any](items []E, opts Options[E]) (*dynlist.DynamicList[E], error) {
	list := dynlist.NewWithCapacity[E](opts.Capacity)
	for _, item := range items {
		list.Add(item)
	}
	for _, insert := range opts.Inserts {
		if err := list.AddAt(insert.Index, insert.Value); err != nil {
			return nil, fmt.Errorf("insert at %d: %w", insert.Index, err)
		}
	}
	for _, index := range opts.Deletes {
		if err := list.Delete(index); err != nil {
			return nil, fmt.Errorf("delete at %d: %w", index, err)
		}
	}
	if opts.Sorter != nil {
		if err := opts.Sorter(list); err != nil {
			return nil, fmt.Errorf("sort: %w", err)
		}
	}
	return list, nil
}

// ParseInsert splits an "index:value" argument.
func ParseInsert(arg string) (int, string, error) {
	index, value, found := strings.Cut(arg, ":")
	if !found {
		return 0, "", fmt.Errorf("insert %q: expected index:value", arg)
	}
	i, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil {
		return 0, "", fmt.Errorf("insert %q: %w", arg, err)
	}
	return i, strings.TrimSpace(value), nil
}
