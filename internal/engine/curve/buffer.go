package curve

import "github.com/Faultbox/curveboard/pkg/math"

// Buffer is a fixed-capacity arena of 3D points stored as flat scalars,
// point i at [i*3, i*3+3). Only the first Offset() scalars are populated.
type Buffer struct {
	data   []float32
	offset int
}

// NewBuffer allocates room for the given number of points.
func NewBuffer(points int) *Buffer {
	return &Buffer{data: make([]float32, points*3)}
}

// Len returns the number of populated points.
func (b *Buffer) Len() int { return b.offset / 3 }

// Cap returns the capacity in points.
func (b *Buffer) Cap() int { return len(b.data) / 3 }

// Offset returns the number of populated scalars (the write offset).
func (b *Buffer) Offset() int { return b.offset }

// Scalars returns the populated scalars. The slice aliases the buffer.
func (b *Buffer) Scalars() []float32 { return b.data[:b.offset] }

// Point returns point i if it is populated.
func (b *Buffer) Point(i int) (math.Vec3, bool) {
	if i < 0 || i >= b.Len() {
		return math.Vec3{}, false
	}
	return math.Vec3From(b.data[i*3:]), true
}

// SetPoint overwrites populated point i.
func (b *Buffer) SetPoint(i int, p math.Vec3) bool {
	if i < 0 || i >= b.Len() {
		return false
	}
	b.data[i*3], b.data[i*3+1], b.data[i*3+2] = p.X, p.Y, p.Z
	return true
}

// Append writes p at the write offset. It reports false when full.
func (b *Buffer) Append(p math.Vec3) bool {
	if b.offset+3 > len(b.data) {
		return false
	}
	b.data[b.offset], b.data[b.offset+1], b.data[b.offset+2] = p.X, p.Y, p.Z
	b.offset += 3
	return true
}

// Replace copies scalars into the buffer and moves the write offset to
// len(scalars). The caller checks that it fits and is a whole number of
// points.
func (b *Buffer) Replace(scalars []float32) {
	n := copy(b.data, scalars)
	clear(b.data[n:])
	b.offset = n
}
