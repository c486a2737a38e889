package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/curveboard/internal/engine/curve"
)

func coords(v ...float32) curve.Attributes {
	return curve.Attributes{curve.CoordsAttribute: v}
}

func TestStoreSubmitAndReset(t *testing.T) {
	s := newStore([]Attribute{Coords})
	a := s.lookup(curve.CoordsAttribute)
	require.NotNil(t, a)
	assert.True(t, a.realloc, "fresh buffers need allocating")
	a.clean()

	s.submit(coords(1, 2, 3))
	s.submit(coords(4, 5, 6))
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, a.data)
	assert.Equal(t, 2, s.count())
	assert.True(t, a.realloc)
	a.clean()

	s.reset(coords(7, 8, 9))
	assert.Equal(t, []float32{7, 8, 9}, a.data)
	assert.Equal(t, 1, s.count())
	assert.True(t, a.realloc)

	s.reset(coords())
	assert.Equal(t, 0, s.count())
}

func TestStoreCopies(t *testing.T) {
	s := newStore([]Attribute{Coords})
	src := []float32{1, 1, 1}
	s.reset(coords(src...))
	src[0] = 42

	assert.Equal(t, []float32{1, 1, 1}, s.lookup(curve.CoordsAttribute).data)
}

func TestStoreUpdateDirtyRange(t *testing.T) {
	s := newStore([]Attribute{Coords})
	s.reset(coords(0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3))
	a := s.lookup(curve.CoordsAttribute)
	a.clean()

	s.update(2, coords(9, 9, 9))
	assert.False(t, a.realloc, "in-place updates keep the allocation")
	assert.Equal(t, 6, a.dirtyFrom)
	assert.Equal(t, 9, a.dirtyTo)

	s.update(0, coords(8, 8, 8))
	assert.Equal(t, 0, a.dirtyFrom)
	assert.Equal(t, 9, a.dirtyTo)

	assert.Equal(t, []float32{8, 8, 8, 1, 1, 1, 9, 9, 9, 3, 3, 3}, a.data)
}

func TestStorePanics(t *testing.T) {
	s := newStore([]Attribute{Coords})
	s.reset(coords(0, 0, 0))

	assert.Panics(t, func() { s.submit(curve.Attributes{"color": {1, 1, 1}}) })
	assert.Panics(t, func() { s.submit(coords(1, 2)) })
	assert.Panics(t, func() { s.update(1, coords(1, 2, 3)) })
	assert.Panics(t, func() { s.update(-1, coords(1, 2, 3)) })
}

func TestStoreCountShortestAttribute(t *testing.T) {
	s := newStore([]Attribute{Coords, {Name: "uv", Size: 2}})
	s.submit(curve.Attributes{
		curve.CoordsAttribute: {0, 0, 0, 1, 1, 1},
		"uv":                  {0, 0},
	})
	assert.Equal(t, 1, s.count())
}
