package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptsReflexive(t *testing.T) {
	for _, ty := range []Type{Int, Float, Bool, Unit} {
		assert.True(t, Accepts(ty, ty), "%s should accept itself", ty)
	}
}

func TestAcceptsWideningAndCoercions(t *testing.T) {
	assert.True(t, Accepts(Float, Int), "float accepts int (widening)")
	assert.True(t, Accepts(Bool, Int), "bool accepts int (tolerated)")
	assert.True(t, Accepts(Int, Bool), "int accepts bool (tolerated)")
}

func TestAcceptsRejectsFloatNarrowing(t *testing.T) {
	assert.False(t, Accepts(Int, Float), "int must not accept float")
	assert.False(t, Accepts(Bool, Float), "bool must not accept float")
	assert.False(t, Accepts(Float, Bool), "float must not accept bool")
}

func TestNumeric(t *testing.T) {
	assert.True(t, Numeric(Int))
	assert.True(t, Numeric(Float))
	assert.False(t, Numeric(Bool))
	assert.False(t, Numeric(Unit))
}
