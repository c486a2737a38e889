package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/curveboard/pkg/math"
)

func TestBuffer(t *testing.T) {
	b := NewBuffer(2)
	assert.Equal(t, 2, b.Cap())
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Scalars())

	assert.True(t, b.Append(math.Vec3{X: 1, Y: 2, Z: 3}))
	assert.True(t, b.Append(math.Vec3{X: 4, Y: 5, Z: 6}))
	assert.False(t, b.Append(math.Vec3{}), "full buffer rejects appends")

	assert.Equal(t, 6, b.Offset())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, b.Scalars())

	p, ok := b.Point(1)
	assert.True(t, ok)
	assert.Equal(t, math.Vec3{X: 4, Y: 5, Z: 6}, p)

	_, ok = b.Point(2)
	assert.False(t, ok)

	assert.True(t, b.SetPoint(0, math.Vec3{X: 9}))
	assert.False(t, b.SetPoint(2, math.Vec3{}))
	assert.Equal(t, []float32{9, 0, 0, 4, 5, 6}, b.Scalars())
}

func TestBufferReplace(t *testing.T) {
	b := NewBuffer(3)
	b.Replace([]float32{1, 1, 1, 2, 2, 2, 3, 3, 3})
	assert.Equal(t, 3, b.Len())

	b.Replace([]float32{7, 7, 7})
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, []float32{7, 7, 7}, b.Scalars())

	// Stale points past the offset are cleared.
	b.offset = 9
	assert.Equal(t, []float32{7, 7, 7, 0, 0, 0, 0, 0, 0}, b.Scalars())
}
