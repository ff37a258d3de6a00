package overlay

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLRenderer draws an overlay image as a textured quad. It needs a
// current OpenGL 4.1 context.
type GLRenderer struct {
	shader  uint32
	vao     uint32
	vbo     uint32
	texture uint32

	uploaded *image.RGBA
}

// NewGLRenderer compiles the overlay shader and creates its buffers.
func NewGLRenderer() (*GLRenderer, error) {
	r := &GLRenderer{}

	var err error
	r.shader, err = linkShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("create overlay shader: %w", err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// pos(2) + uv(2)
	stride := int32(4 * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return r, nil
}

// Draw renders img scaled by scale, centred horizontally near the bottom
// of a viewW x viewH viewport.
func (r *GLRenderer) Draw(img *image.RGBA, viewW, viewH, scale int) {
	if img == nil {
		return
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	if img != r.uploaded {
		b := img.Bounds()
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		r.uploaded = img
	}

	x, y, w, h := Placement(img.Bounds(), viewW, viewH, scale)
	vertices := []float32{
		x, y, 0, 0,
		x + w, y, 1, 0,
		x + w, y + h, 1, 1,
		x, y, 0, 0,
		x + w, y + h, 1, 1,
		x, y + h, 0, 1,
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(viewW), float32(viewH), 0, -1, 1)
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.shader, gl.Str("uProjection\x00")), 1, false, &proj[0])
	gl.Uniform1i(gl.GetUniformLocation(r.shader, gl.Str("uTexture\x00")), 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	gl.Disable(gl.BLEND)
}

// Close releases the GL objects.
func (r *GLRenderer) Close() {
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// Placement returns where an overlay of size b goes in a viewW x viewH
// view: scaled, centred horizontally and one panel padding above the
// bottom edge.
func Placement(b image.Rectangle, viewW, viewH, scale int) (x, y, w, h float32) {
	scale = max(scale, 1)
	w = float32(b.Dx() * scale)
	h = float32(b.Dy() * scale)
	x = (float32(viewW) - w) / 2
	y = float32(viewH) - h - float32(padding*scale)
	return x, y, w, h
}

func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

const vertexShaderSource = `
	#version 410 core

	layout (location = 0) in vec2 aPos;
	layout (location = 1) in vec2 aTexCoord;

	uniform mat4 uProjection;

	out vec2 vTexCoord;

	void main() {
		gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
		vTexCoord = aTexCoord;
	}
` + "\x00"

const fragmentShaderSource = `
	#version 410 core

	uniform sampler2D uTexture;

	in vec2 vTexCoord;
	out vec4 FragColor;

	void main() {
		FragColor = texture(uTexture, vTexCoord);
	}
` + "\x00"

func linkShaderProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
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
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", log)
	}
	return program, nil
}

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
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile failed: %s", log)
	}
	return shader, nil
}
