package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlide(t *testing.T) {
	an := NewAnimator()
	pos := [2]float32{2, 9}
	done := false

	an.slide(&pos, 10, 3, func() { done = true })
	assert.True(t, an.Busy())

	for i := 0; i < 100 && an.Busy(); i++ {
		an.Update(0.016)
	}

	assert.False(t, an.Busy())
	assert.True(t, done)
	assert.InDelta(t, 10, pos[0], 0.001)
	assert.InDelta(t, 3, pos[1], 0.001)
}
