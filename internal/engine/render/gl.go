package render

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/chisel3d/chisel/internal/logger"
)

// GLBuffer is an ArrayBuffer that uploads into OpenGL buffer objects and
// issues the draw call. It must be created after a GL context exists.
type GLBuffer struct {
	ArrayBuffer

	vao uint32
	vbo uint32
	nbo uint32
	ebo uint32

	program  uint32
	locMVP   int32
	locModel int32

	mvp       mgl32.Mat4
	model     mgl32.Mat4
	wireframe bool
	uploaded  int // number of indices uploaded
}

// NewGLBuffer creates the GL objects and shader program.
func NewGLBuffer() (*GLBuffer, error) {
	b := &GLBuffer{
		mvp:   mgl32.Ident4(),
		model: mgl32.Ident4(),
	}

	var err error
	b.program, err = createMeshProgram()
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	b.locMVP = gl.GetUniformLocation(b.program, gl.Str("uMVP\x00"))
	b.locModel = gl.GetUniformLocation(b.program, gl.Str("uModel\x00"))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.GenBuffers(1, &b.nbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.nbo)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 3*4, 0)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)

	gl.BindVertexArray(0)

	logger.Debug("mesh GL buffer created", zap.Uint32("vao", b.vao))
	return b, nil
}

// SetTransforms sets the matrices used by the next draw call.
func (b *GLBuffer) SetTransforms(model, view, projection mgl32.Mat4) {
	b.model = model
	b.mvp = projection.Mul4(view).Mul4(model)
}

// Upload pushes the current arrays into the GL buffer objects.
func (b *GLBuffer) Upload() {
	gl.BindVertexArray(b.vao)

	if len(b.positions) > 0 {
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(b.positions)*4, unsafe.Pointer(&b.positions[0]), gl.DYNAMIC_DRAW)

		gl.BindBuffer(gl.ARRAY_BUFFER, b.nbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(b.normals)*4, unsafe.Pointer(&b.normals[0]), gl.DYNAMIC_DRAW)
	}
	if len(b.indices) > 0 {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.indices)*4, unsafe.Pointer(&b.indices[0]), gl.DYNAMIC_DRAW)
	}
	b.uploaded = len(b.indices)

	gl.BindVertexArray(0)
}

// Render draws the uploaded triangles.
func (b *GLBuffer) Render() {
	if b.uploaded == 0 {
		return
	}
	if b.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	gl.UseProgram(b.program)
	gl.UniformMatrix4fv(b.locMVP, 1, false, &b.mvp[0])
	gl.UniformMatrix4fv(b.locModel, 1, false, &b.model[0])

	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(b.uploaded), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	if b.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// ToggleRenderMode switches between solid and wireframe drawing.
func (b *GLBuffer) ToggleRenderMode() {
	b.wireframe = !b.wireframe
	logger.Debug("render mode toggled", zap.Bool("wireframe", b.wireframe))
}

// Reset clears the CPU arrays; GL objects are kept for reuse.
func (b *GLBuffer) Reset() {
	b.ArrayBuffer.Reset()
	b.uploaded = 0
}

// Close releases the GL objects.
func (b *GLBuffer) Close() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.nbo != 0 {
		gl.DeleteBuffers(1, &b.nbo)
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	if b.program != 0 {
		gl.DeleteProgram(b.program)
	}
}

func createMeshProgram() (uint32, error) {
	vertexShaderSource := `
		#version 410 core

		layout (location = 0) in vec3 aPos;
		layout (location = 1) in vec3 aNormal;

		uniform mat4 uMVP;
		uniform mat4 uModel;

		out vec3 vNormal;

		void main() {
			gl_Position = uMVP * vec4(aPos, 1.0);
			vNormal = mat3(uModel) * aNormal;
		}
	` + "\x00"

	fragmentShaderSource := `
		#version 410 core

		in vec3 vNormal;
		out vec4 FragColor;

		void main() {
			vec3 lightDir = normalize(vec3(0.4, 0.8, 1.0));
			float diffuse = max(dot(normalize(vNormal), lightDir), 0.0);
			vec3 base = vec3(0.65, 0.66, 0.7);
			FragColor = vec4(base * (0.25 + 0.75 * diffuse), 1.0);
		}
	` + "\x00"

	return linkProgram(vertexShaderSource, fragmentShaderSource)
}

// linkProgram compiles and links a vertex/fragment shader pair.
func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %s", log)
	}
	return program, nil
}

// compileShader compiles a shader from source.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %s", log)
	}
	return shader, nil
}
