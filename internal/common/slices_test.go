package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstLast(t *testing.T) {
	first, ok := First([]string{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "a", first)

	last, ok := Last([]string{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "c", last)

	_, ok = First([]string(nil))
	assert.False(t, ok)

	_, ok = Last([]int{})
	assert.False(t, ok)
}

func TestSliceSize(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))
	assert.False(t, IsMultiple([]int{1}))
	assert.True(t, IsMultiple([]int{1, 2}))
}
