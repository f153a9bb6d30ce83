package renderer

import (
	"image"

	"spritegl/internal/graphics/gldebug"
	"spritegl/internal/sprite"

	"github.com/go-gl/mathgl/mgl32"
)

// Device is the slice of the graphics API the sprite pipeline uses. The
// OpenGL implementation lives in package graphics; tests use a recording fake.
type Device interface {
	// InstallDebugOutput routes driver messages to handler synchronously.
	InstallDebugOutput(handler func(gldebug.Message))
	// BuildProgram compiles both stages, links them and deletes the
	// intermediate shader objects. Errors carry the driver info log verbatim.
	BuildProgram(vertexSrc, fragmentSrc []byte) (uint32, error)
	CreateVertexArray() uint32
	// UploadAtlas creates an sRGB RGBA8 texture with clamp-to-edge wrapping
	// and linear filtering, bound to texture unit 0.
	UploadAtlas(img *image.NRGBA) uint32
	// CreateStorageBuffer allocates a dynamic shader storage buffer at the
	// binding slot, seeded with data.
	CreateStorageBuffer(binding uint32, data []sprite.Transform) uint32
	// UpdateStorageBuffer overwrites the buffer prefix with data.
	UpdateStorageBuffer(buffer uint32, data []sprite.Transform)
	UniformLocation(program uint32, name string) int32
	// ConfigurePipeline enables sRGB framebuffer conversion, disables
	// multisampling and enables reversed-depth testing.
	ConfigurePipeline()
	UseProgram(program uint32)

	Clear(color mgl32.Vec4, depth float64)
	Viewport(x, y, width, height int32)
	Uniform2f(location int32, v mgl32.Vec2)
	DrawInstanced(vertices, instances int32)

	Delete(program, vao, texture, buffer uint32)
}
