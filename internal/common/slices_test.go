package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstLast(t *testing.T) {
	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = Last([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = First([]int(nil))
	assert.False(t, ok)

	n, ok := Last([]int{})
	assert.False(t, ok)
	assert.Zero(t, n)
}
