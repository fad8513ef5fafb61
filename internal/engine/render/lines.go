package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// LineBuffer draws line segments, used for the octree debug overlay.
type LineBuffer struct {
	vao     uint32
	vbo     uint32
	program uint32
	locMVP  int32
	count   int32
	mvp     mgl32.Mat4
}

// NewLineBuffer creates the GL objects for line drawing.
func NewLineBuffer() (*LineBuffer, error) {
	b := &LineBuffer{mvp: mgl32.Ident4()}

	var err error
	b.program, err = linkProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	b.locMVP = gl.GetUniformLocation(b.program, gl.Str("uMVP\x00"))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	return b, nil
}

// SetLines uploads segment endpoints, 3 floats per vertex, 2 vertices per
// segment.
func (b *LineBuffer) SetLines(vertices []float32) {
	b.count = int32(len(vertices) / 3)
	if len(vertices) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
}

// SetTransform sets the matrix used by the next draw call.
func (b *LineBuffer) SetTransform(mvp mgl32.Mat4) { b.mvp = mvp }

// Render draws the uploaded segments.
func (b *LineBuffer) Render() {
	if b.count == 0 {
		return
	}
	gl.UseProgram(b.program)
	gl.UniformMatrix4fv(b.locMVP, 1, false, &b.mvp[0])
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.LINES, 0, b.count)
	gl.BindVertexArray(0)
}

// Close releases the GL objects.
func (b *LineBuffer) Close() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.program != 0 {
		gl.DeleteProgram(b.program)
	}
}

const lineVertexShader = `
	#version 410 core

	layout (location = 0) in vec3 aPos;
	uniform mat4 uMVP;

	void main() {
		gl_Position = uMVP * vec4(aPos, 1.0);
	}
` + "\x00"

const lineFragmentShader = `
	#version 410 core

	out vec4 FragColor;

	void main() {
		FragColor = vec4(0.95, 0.55, 0.1, 1.0);
	}
` + "\x00"
