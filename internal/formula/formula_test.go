package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualStructural(t *testing.T) {
	a, err := Parse("a∧(b∨c)")
	assert.Nil(t, err)
	b, err := Parse("a∧(b∨c)")
	assert.Nil(t, err)
	assert.NotSame(t, a, b)
	assert.True(t, Equal(a, b))
}

func TestEqualRejectsDifferentShape(t *testing.T) {
	a, _ := Parse("a∧b")
	b, _ := Parse("a∨b")
	assert.False(t, Equal(a, b))
}

func TestEqualNilHandling(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	a, _ := Parse("a")
	assert.False(t, Equal(a, nil))
	assert.False(t, Equal(nil, a))
}
