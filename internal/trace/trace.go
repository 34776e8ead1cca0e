// Package trace records the partition steps of a quicksort run and draws them
// as a tree.
package trace

import (
	"fmt"

	asciitree "github.com/thediveo/go-asciitree"
)

type Event[E any] struct {
	Left       int
	Right      int
	PivotIndex int
	Pivot      E
}

// Collector implements quicksort.Tracer.
type Collector[E any] struct {
	Events []Event[E]
}

func NewCollector[E any]() *Collector[E] {
	return &Collector[E]{}
}

func (c *Collector[E]) Partition(left, right, pivotIndex int, pivot E) {
	c.Events = append(c.Events, Event[E]{Left: left, Right: right, PivotIndex: pivotIndex, Pivot: pivot})
}

// MaxDepth is the deepest level Tree builds. Sorted input partitions one
// element per level, so below this depth sub-ranges are collapsed into a
// single leaf; tracing is meant for small inputs.
const MaxDepth = 64

type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

// Tree converts the recorded events for a list of the given size into nested
// nodes. The root covers [0, size-1]; sub-ranges that were never partitioned
// become leaves. Returns false when nothing was recorded for the root range.
func (c *Collector[E]) Tree(size int) (AsciiNode, bool) {
	byRange := make(map[[2]int]Event[E], len(c.Events))
	for _, e := range c.Events {
		byRange[[2]int{e.Left, e.Right}] = e
	}
	if _, ok := byRange[[2]int{0, size - 1}]; !ok {
		return AsciiNode{}, false
	}
	return convertToTree(byRange, 0, size-1, 0), true
}

func convertToTree[E any](byRange map[[2]int]Event[E], left, right, depth int) AsciiNode {
	e, ok := byRange[[2]int{left, right}]
	if !ok {
		return AsciiNode{Label: rangeLabel(left, right)}
	}
	if depth == MaxDepth {
		return AsciiNode{Label: rangeLabel(left, right), Props: []string{"deeper partitions omitted"}}
	}
	var children []AsciiNode
	if e.PivotIndex-1 >= left {
		children = append(children, convertToTree(byRange, left, e.PivotIndex-1, depth+1))
	}
	if e.PivotIndex+1 <= right {
		children = append(children, convertToTree(byRange, e.PivotIndex+1, right, depth+1))
	}
	return AsciiNode{
		Label:    rangeLabel(left, right),
		Props:    []string{fmt.Sprintf("pivot %v -> %d", e.Pivot, e.PivotIndex)},
		Children: children,
	}
}

func rangeLabel(left, right int) string {
	if left == right {
		return fmt.Sprintf("[%d]", left)
	}
	return fmt.Sprintf("[%d..%d]", left, right)
}

// Render draws the partition tree, or an empty string when no partition happened.
func (c *Collector[E]) Render(size int) string {
	root, ok := c.Tree(size)
	if !ok {
		return ""
	}
	return asciitree.RenderFancy(root)
}
