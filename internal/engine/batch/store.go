package batch

import (
	"fmt"

	"github.com/Faultbox/curveboard/internal/engine/curve"
)

// Attribute describes one vertex attribute: its name and how many float32
// components make up a vertex.
type Attribute struct {
	Name string
	Size int
}

// Coords is the default layout: a single vec3 position.
var Coords = Attribute{Name: curve.CoordsAttribute, Size: 3}

// attribute is the CPU-side copy of one attribute buffer plus what still
// has to reach the GPU.
type attribute struct {
	Attribute
	data []float32

	// realloc means the GPU buffer must be re-specified (size changed or
	// replaced). Otherwise [dirtyFrom, dirtyTo) scalars need a sub-upload.
	realloc   bool
	dirtyFrom int
	dirtyTo   int
}

func (a *attribute) markDirty(from, to int) {
	if a.dirtyFrom == a.dirtyTo {
		a.dirtyFrom, a.dirtyTo = from, to
		return
	}
	a.dirtyFrom = min(a.dirtyFrom, from)
	a.dirtyTo = max(a.dirtyTo, to)
}

func (a *attribute) clean() {
	a.realloc = false
	a.dirtyFrom, a.dirtyTo = 0, 0
}

// store keeps attribute data in layout order. It owns copies of everything
// it is given.
type store struct {
	attrs []*attribute
}

func newStore(layout []Attribute) store {
	s := store{attrs: make([]*attribute, len(layout))}
	for i, l := range layout {
		s.attrs[i] = &attribute{Attribute: l, realloc: true}
	}
	return s
}

func (s *store) lookup(name string) *attribute {
	for _, a := range s.attrs {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// each calls fn for every attribute in attrs that is part of the layout.
// Malformed data is a programming error and panics.
func (s *store) each(attrs curve.Attributes, fn func(a *attribute, data []float32)) {
	for name, data := range attrs {
		a := s.lookup(name)
		if a == nil {
			panic(fmt.Sprintf("batch: unknown attribute %q", name))
		}
		if len(data)%a.Size != 0 {
			panic(fmt.Sprintf("batch: attribute %q has %d scalars, not a multiple of %d", name, len(data), a.Size))
		}
		fn(a, data)
	}
}

func (s *store) submit(attrs curve.Attributes) {
	s.each(attrs, func(a *attribute, data []float32) {
		a.data = append(a.data, data...)
		a.realloc = true
	})
}

func (s *store) update(index int, attrs curve.Attributes) {
	s.each(attrs, func(a *attribute, data []float32) {
		from := index * a.Size
		to := from + len(data)
		if index < 0 || to > len(a.data) {
			panic(fmt.Sprintf("batch: update of %q at vertex %d overruns %d vertices", a.Name, index, len(a.data)/a.Size))
		}
		copy(a.data[from:to], data)
		a.markDirty(from, to)
	})
}

func (s *store) reset(attrs curve.Attributes) {
	s.each(attrs, func(a *attribute, data []float32) {
		a.data = append(a.data[:0], data...)
		a.realloc = true
	})
}

// count returns the number of complete vertices, bounded by the shortest
// attribute.
func (s *store) count() int {
	if len(s.attrs) == 0 {
		return 0
	}
	n := len(s.attrs[0].data) / s.attrs[0].Size
	for _, a := range s.attrs[1:] {
		n = min(n, len(a.data)/a.Size)
	}
	return n
}
