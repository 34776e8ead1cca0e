package dynlist

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexOutOfRangeError(t *testing.T) {
	assert := assert.New(t)
	err := newIndexOutOfRangeError(5, 3)

	assert.Equal("index: 5, size: 3", err.Error())
	assert.True(errors.Is(err, IndexOutOfRangeError))

	wrapped := fmt.Errorf("delete: %w", err)
	assert.True(errors.Is(wrapped, IndexOutOfRangeError))
	var details *IndexOutOfRangeErrorWithDetails
	assert.True(errors.As(wrapped, &details))
	assert.Equal(5, details.Index)
}
