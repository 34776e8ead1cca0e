package dynlist

import (
	"fmt"
)

// ////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
// Index Out Of Range Error - means that an index argument is outside of the range valid for the operation
// ////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
var IndexOutOfRangeError = fmt.Errorf("index out of range")

type IndexOutOfRangeErrorWithDetails struct {
	Details string
	Index   int
	Size    int
}

func newIndexOutOfRangeError(index, size int) *IndexOutOfRangeErrorWithDetails {
	return &IndexOutOfRangeErrorWithDetails{
		Details: fmt.Sprintf("index: %d, size: %d", index, size),
		Index:   index,
		Size:    size,
	}
}

func (e *IndexOutOfRangeErrorWithDetails) Error() string {
	return e.Details
}

func (e *IndexOutOfRangeErrorWithDetails) Unwrap() error {
	return IndexOutOfRangeError
}
