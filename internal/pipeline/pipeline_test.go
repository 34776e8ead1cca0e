package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliodor1/own-array-list/pkg/dynlist"
	"github.com/iliodor1/own-array-list/pkg/quicksort"
)

func TestRun_Insert(t *testing.T) {
	assert := assert.New(t)

	list, err := Run([]int{1, 3, 4}, Options[int]{
		Inserts: []Insert[int]{{Index: 1, Value: 2}},
	})

	assert.NoError(err)
	assert.Equal([]int{1, 2, 3, 4}, list.Items())
}

func TestRun_Delete(t *testing.T) {
	assert := assert.New(t)

	list, err := Run([]int{1, 3, 4}, Options[int]{Deletes: []int{1}})

	assert.NoError(err)
	assert.Equal([]int{1, 4}, list.Items())
}

func TestRun_Sort(t *testing.T) {
	assert := assert.New(t)

	list, err := Run([]string{"Pavel", "Eldar", "Anna"}, Options[string]{
		Capacity: 0,
		Sorter: func(list *dynlist.DynamicList[string]) error {
			return quicksort.SortFunc[string](list, strings.Compare)
		},
	})

	assert.NoError(err)
	assert.Equal([]string{"Anna", "Eldar", "Pavel"}, list.Items())
}

func TestRun_OperationsInOrder(t *testing.T) {
	assert := assert.New(t)

	list, err := Run([]int{3, 1, 2}, Options[int]{
		Capacity: 3,
		Inserts:  []Insert[int]{{Index: 3, Value: 0}, {Index: 0, Value: 9}},
		Deletes:  []int{1},
		Sorter: func(list *dynlist.DynamicList[int]) error {
			return quicksort.Sort[int](list)
		},
	})

	// [3 1 2] -> [3 1 2 0] -> [9 3 1 2 0] -> [9 1 2 0] -> sorted
	assert.NoError(err)
	assert.Equal([]int{0, 1, 2, 9}, list.Items())
	assert.Equal(6, list.Capacity())
}

func TestRun_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	_, err := Run([]int{1}, Options[int]{Inserts: []Insert[int]{{Index: 5, Value: 2}}})
	assert.ErrorIs(err, dynlist.IndexOutOfRangeError)
	assert.Contains(err.Error(), "insert at 5")

	_, err = Run([]int{1}, Options[int]{Deletes: []int{1}})
	assert.ErrorIs(err, dynlist.IndexOutOfRangeError)
	assert.Contains(err.Error(), "delete at 1")
}

func TestParseInsert(t *testing.T) {
	assert := assert.New(t)

	index, value, err := ParseInsert("1: Eldar")
	assert.NoError(err)
	assert.Equal(1, index)
	assert.Equal("Eldar", value)

	// only the first colon separates
	_, value, err = ParseInsert("0:a:b")
	assert.NoError(err)
	assert.Equal("a:b", value)

	_, _, err = ParseInsert("nocolon")
	assert.Error(err)

	_, _, err = ParseInsert("x:1")
	assert.Error(err)
}
