package viewer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/planegen/pkg/genmesh"
	"github.com/Faultbox/planegen/pkg/math"
)

const planeVertexShader = `#version 410 core
layout(location = 0) in vec2 aPos;

uniform mat4 uMVP;

void main() {
    gl_Position = uMVP * vec4(aPos, 0.0, 1.0);
}
`

const planeFragmentShader = `#version 410 core
uniform vec3 uColor;

out vec4 fragColor;

void main() {
    fragColor = vec4(uColor, 1.0);
}
`

// Renderer uploads a generated plane's vertex and index buffers and draws
// them as a filled grid with an optional wireframe overlay.
type Renderer struct {
	program  uint32
	locMVP   int32
	locColor int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewRenderer builds the deduplicated buffers for the plane and uploads
// them to the GPU. Requires a current OpenGL context.
func NewRenderer(p *genmesh.Plane) (*Renderer, error) {
	vertices, err := genmesh.BuildVertexBuffer(p)
	if err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}
	indices, err := genmesh.BuildIndexBuffer(p)
	if err != nil {
		return nil, fmt.Errorf("viewer: %w", err)
	}

	program, err := compileProgram(planeVertexShader, planeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("plane shader: %w", err)
	}

	r := &Renderer{
		program:    program,
		locMVP:     getUniform(program, "uMVP"),
		locColor:   getUniform(program, "uColor"),
		indexCount: int32(len(indices)),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	// VBO: two floats per vertex, straight from the shared-vertex buffer.
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(math.Vec2{})), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, int32(unsafe.Sizeof(math.Vec2{})), 0)
	gl.EnableVertexAttribArray(0)

	// EBO
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return r, nil
}

// Draw renders the plane with the given model-view-projection matrix.
func (r *Renderer) Draw(mvp math.Mat4, wireframe bool) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMVP, 1, false, mvp.Ptr())
	gl.BindVertexArray(r.vao)

	// Filled pass, pushed back so the wireframe overlay wins the depth test.
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 1)
	gl.Uniform3f(r.locColor, 0.18, 0.35, 0.60)
	gl.DrawElementsWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, 0)
	gl.Disable(gl.POLYGON_OFFSET_FILL)

	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		gl.Uniform3f(r.locColor, 0.92, 0.92, 0.92)
		gl.DrawElementsWithOffset(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, 0)
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.BindVertexArray(0)
}

// Destroy releases GPU resources.
func (r *Renderer) Destroy() {
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteProgram(r.program)
}
