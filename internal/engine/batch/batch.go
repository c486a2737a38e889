// Package batch provides an OpenGL batch renderer: it mirrors vertex
// attribute buffers on the CPU, uploads what changed on Flush and draws them
// with a flat-colored material.
package batch

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/curveboard/internal/engine/curve"
	"github.com/Faultbox/curveboard/internal/engine/shader"
	"github.com/Faultbox/curveboard/internal/logger"
)

// Mode is the primitive type used to draw the batch.
type Mode uint32

// Supported draw modes.
const (
	Points    Mode = gl.POINTS
	Lines     Mode = gl.LINES
	LineStrip Mode = gl.LINE_STRIP
)

// BasicMaterial draws every vertex in one color. PointSize applies to
// Points batches.
type BasicMaterial struct {
	Color     [3]float32
	PointSize float32
}

const vertexShader = `
#version 410 core

layout (location = 0) in vec3 coords;

uniform mat4 uViewProj;
uniform float uPointSize;

void main() {
	gl_Position = uViewProj * vec4(coords, 1.0);
	gl_PointSize = uPointSize;
}
`

const fragmentShader = `
#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`

// Renderer is a GL-backed curve.Renderer.
// IMPORTANT: must be created and used on the thread owning the GL context.
type Renderer struct {
	store
	mode     Mode
	material BasicMaterial

	program      uint32
	locViewProj  int32
	locColor     int32
	locPointSize int32

	vao  uint32
	vbos []uint32
}

var _ curve.Renderer = (*Renderer)(nil)

// New creates a renderer. The first attribute of layout is bound to location
// 0 and must be the position; with no layout, Coords is used.
func New(mode Mode, material BasicMaterial, layout ...Attribute) (*Renderer, error) {
	if len(layout) == 0 {
		layout = []Attribute{Coords}
	}

	r := &Renderer{
		store:    newStore(layout),
		mode:     mode,
		material: material,
		vbos:     make([]uint32, len(layout)),
	}

	var err error
	r.program, err = shader.CompileProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("batch shader: %w", err)
	}
	r.locViewProj = shader.MustGetUniform(r.program, "uViewProj")
	r.locColor = shader.MustGetUniform(r.program, "uColor")
	r.locPointSize = shader.MustGetUniform(r.program, "uPointSize")

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(int32(len(r.vbos)), &r.vbos[0])
	for i, a := range r.attrs {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbos[i])
		gl.VertexAttribPointer(uint32(i), int32(a.Size), gl.FLOAT, false, 0, nil)
		gl.EnableVertexAttribArray(uint32(i))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("batch renderer created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("mode", uint32(mode)),
		zap.Int("attributes", len(layout)),
	)
	return r, nil
}

// Submit appends vertices.
func (r *Renderer) Submit(attrs curve.Attributes) { r.submit(attrs) }

// Update overwrites vertices starting at index.
func (r *Renderer) Update(index int, attrs curve.Attributes) { r.update(index, attrs) }

// Reset replaces all vertices.
func (r *Renderer) Reset(attrs curve.Attributes) { r.reset(attrs) }

// Count returns the number of vertices that will be drawn.
func (r *Renderer) Count() int { return r.count() }

// Flush uploads pending changes and draws the batch with v's transform.
func (r *Renderer) Flush(v curve.Viewer) {
	r.upload()

	n := r.count()
	if n == 0 {
		return
	}

	viewProj := v.ProjectionViewMatrix()

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locViewProj, 1, false, viewProj.Ptr())
	gl.Uniform3f(r.locColor, r.material.Color[0], r.material.Color[1], r.material.Color[2])
	gl.Uniform1f(r.locPointSize, r.material.PointSize)
	if r.mode == Points {
		gl.Enable(gl.PROGRAM_POINT_SIZE)
	}

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(uint32(r.mode), 0, int32(n))
	gl.BindVertexArray(0)
}

// upload pushes dirty attribute data to the GPU.
func (r *Renderer) upload() {
	for i, a := range r.attrs {
		switch {
		case a.realloc:
			gl.BindBuffer(gl.ARRAY_BUFFER, r.vbos[i])
			if len(a.data) > 0 {
				gl.BufferData(gl.ARRAY_BUFFER, len(a.data)*4, gl.Ptr(a.data), gl.DYNAMIC_DRAW)
			} else {
				gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
			}
		case a.dirtyTo > a.dirtyFrom:
			gl.BindBuffer(gl.ARRAY_BUFFER, r.vbos[i])
			gl.BufferSubData(gl.ARRAY_BUFFER, a.dirtyFrom*4, (a.dirtyTo-a.dirtyFrom)*4, gl.Ptr(a.data[a.dirtyFrom:a.dirtyTo]))
		default:
			continue
		}
		a.clean()
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Close releases the GL objects.
func (r *Renderer) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if len(r.vbos) > 0 && r.vbos[0] != 0 {
		gl.DeleteBuffers(int32(len(r.vbos)), &r.vbos[0])
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
