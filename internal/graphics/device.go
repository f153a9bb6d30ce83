package graphics

import (
	"image"
	"unsafe"

	"spritegl/internal/graphics/gldebug"
	"spritegl/internal/sprite"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GLDevice implements renderer.Device on an OpenGL 4.3 core context. It must
// only be used on the thread that owns the context.
type GLDevice struct {
	// debugProc is kept reachable for as long as the driver may call it.
	debugProc gl.DebugProc
}

// NewGLDevice returns a device for the current context. InitBindings must
// have succeeded first.
func NewGLDevice() *GLDevice {
	return &GLDevice{}
}

func (d *GLDevice) InstallDebugOutput(handler func(gldebug.Message)) {
	d.debugProc = func(source, gltype, id, severity uint32, _ int32, message string, _ unsafe.Pointer) {
		handler(gldebug.Message{
			Source:   source,
			Type:     gltype,
			ID:       id,
			Severity: gldebug.Severity(severity),
			Text:     message,
		})
	}
	gl.DebugMessageCallback(d.debugProc, nil)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.Enable(gl.DEBUG_OUTPUT)
}

func (d *GLDevice) BuildProgram(vertexSrc, fragmentSrc []byte) (uint32, error) {
	return buildProgram(string(vertexSrc), string(fragmentSrc))
}

func (d *GLDevice) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	return vao
}

func (d *GLDevice) UploadAtlas(img *image.NRGBA) uint32 {
	return uploadAtlas(img)
}

func (d *GLDevice) CreateStorageBuffer(binding uint32, data []sprite.Transform) uint32 {
	var sbo uint32
	gl.GenBuffers(1, &sbo)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, binding, sbo)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, len(data)*sprite.TransformSize, transformPtr(data), gl.DYNAMIC_DRAW)
	return sbo
}

func (d *GLDevice) UpdateStorageBuffer(buffer uint32, data []sprite.Transform) {
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, buffer)
	gl.BufferSubData(gl.SHADER_STORAGE_BUFFER, 0, len(data)*sprite.TransformSize, transformPtr(data))
}

func transformPtr(data []sprite.Transform) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

func (d *GLDevice) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *GLDevice) ConfigurePipeline() {
	gl.Enable(gl.FRAMEBUFFER_SRGB)
	gl.Disable(gl.MULTISAMPLE)

	// Reversed depth: cleared to 0, nearer fragments write larger values.
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.GREATER)
}

func (d *GLDevice) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *GLDevice) Clear(color mgl32.Vec4, depth float64) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.ClearDepth(depth)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *GLDevice) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *GLDevice) Uniform2f(location int32, v mgl32.Vec2) {
	gl.Uniform2fv(location, 1, &v[0])
}

func (d *GLDevice) DrawInstanced(vertices, instances int32) {
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, vertices, instances)
}

func (d *GLDevice) Delete(program, vao, texture, buffer uint32) {
	if program != 0 {
		gl.DeleteProgram(program)
	}
	if vao != 0 {
		gl.DeleteVertexArrays(1, &vao)
	}
	if texture != 0 {
		gl.DeleteTextures(1, &texture)
	}
	if buffer != 0 {
		gl.DeleteBuffers(1, &buffer)
	}
}
