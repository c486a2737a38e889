package curve

import "github.com/Faultbox/curveboard/pkg/math"

// CoordsAttribute is the attribute name under which positions are sent to
// renderers.
const CoordsAttribute = "coords"

// Attributes maps an attribute name to its flat scalar data.
type Attributes map[string][]float32

// Viewer supplies the transform a renderer draws with. *camera.Camera
// satisfies it.
type Viewer interface {
	ProjectionViewMatrix() math.Mat4
}

// Renderer is a batch renderer that mirrors a buffer of vertex attributes.
//
// Index in Update counts vertices, not scalars. Implementations must copy
// any attribute data they keep; the curve reuses its slices.
type Renderer interface {
	// Submit appends vertices.
	Submit(attrs Attributes)
	// Update overwrites vertices starting at index.
	Update(index int, attrs Attributes)
	// Reset replaces the whole buffer.
	Reset(attrs Attributes)
	// Flush draws the buffer with the viewer's current transform.
	Flush(v Viewer)
}

func coords(data []float32) Attributes {
	return Attributes{CoordsAttribute: data}
}
