package renderer

import (
	"errors"
	"fmt"

	"spritegl/internal/assets"
	"spritegl/internal/graphics/gldebug"
	"spritegl/internal/input"
	"spritegl/internal/logging"
	"spritegl/internal/profiling"
	"spritegl/internal/sprite"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// TransformBinding is the storage buffer binding slot read by quad.vert.
	TransformBinding = 0

	quadVertices = 6
)

// ClearColor is the brand background colour.
var ClearColor = mgl32.Vec4{119.0 / 255.0, 33.0 / 255.0, 111.0 / 255.0, 1.0}

// ErrNotInitialized is returned by Render before a successful Init.
var ErrNotInitialized = errors.New("renderer: not initialized")

// Assets names the files loaded by Init.
type Assets struct {
	VertexShader   string
	FragmentShader string
	Atlas          string
}

// DefaultAssets returns the asset paths relative to the working directory.
func DefaultAssets() Assets {
	return Assets{
		VertexShader:   "assets/shaders/quad.vert",
		FragmentShader: "assets/shaders/quad.frag",
		Atlas:          "assets/textures/TEXTURE_ATLAS.png",
	}
}

// Renderer draws every transform in the batch with one instanced call per frame.
type Renderer struct {
	dev    Device
	batch  *sprite.Batch
	assets Assets
	debug  *gldebug.Sink

	program      uint32
	vao          uint32
	texture      uint32
	transformSBO uint32
	screenSizeID int32
	ready        bool
}

// NewRenderer creates a renderer drawing from batch. debug receives driver
// messages once Init runs; it may be nil.
func NewRenderer(dev Device, batch *sprite.Batch, a Assets, debug *gldebug.Sink) *Renderer {
	return &Renderer{dev: dev, batch: batch, assets: a, debug: debug}
}

// Init creates every GPU resource the pipeline needs. Shader sources are
// read into scratch. Any failure is fatal for startup; on failure no program
// is bound and Render must not be called.
func (r *Renderer) Init(scratch *assets.Arena) error {
	if r.debug != nil {
		r.dev.InstallDebugOutput(r.debug.Handle)
	}

	vertSrc, err := assets.ReadFile(scratch, r.assets.VertexShader)
	if err != nil {
		return fmt.Errorf("failed to load shaders: %w", err)
	}
	fragSrc, err := assets.ReadFile(scratch, r.assets.FragmentShader)
	if err != nil {
		return fmt.Errorf("failed to load shaders: %w", err)
	}

	program, err := r.dev.BuildProgram(vertSrc, fragSrc)
	if err != nil {
		return err
	}
	r.program = program

	// Geometry is generated from gl_VertexID, but a VAO must still be bound to draw.
	r.vao = r.dev.CreateVertexArray()

	img, err := assets.DecodeRGBA8(r.assets.Atlas)
	if err != nil {
		return fmt.Errorf("failed to load texture: %w", err)
	}
	r.texture = r.dev.UploadAtlas(img)

	r.transformSBO = r.dev.CreateStorageBuffer(TransformBinding, r.batch.Backing())
	r.screenSizeID = r.dev.UniformLocation(r.program, "screenSize")

	r.dev.ConfigurePipeline()
	r.dev.UseProgram(r.program)
	r.ready = true

	logging.Logger().Info("renderer initialized",
		"atlas", fmt.Sprintf("%dx%d", img.Rect.Dx(), img.Rect.Dy()),
		"maxTransforms", r.batch.Cap(),
		"scratchUsed", scratch.Used())
	return nil
}

// Render draws the current batch and then clears it.
func (r *Renderer) Render(screen input.ScreenSize) error {
	if !r.ready {
		return ErrNotInitialized
	}
	defer profiling.Track("renderer.Render")()

	r.dev.Clear(ClearColor, 0.0)
	r.dev.Viewport(0, 0, int32(screen.Width), int32(screen.Height))
	r.dev.Uniform2f(r.screenSizeID, screen.Vec2())

	transforms := r.batch.Transforms()
	if len(transforms) > sprite.MaxTransforms {
		transforms = transforms[:sprite.MaxTransforms]
	}
	if n := len(transforms); n > 0 {
		r.dev.UpdateStorageBuffer(r.transformSBO, transforms)
		r.dev.DrawInstanced(quadVertices, int32(n))
	}

	r.batch.Clear()
	return nil
}

// Dispose releases the GPU resources created by Init.
func (r *Renderer) Dispose() {
	if r.program == 0 && r.vao == 0 && r.texture == 0 && r.transformSBO == 0 {
		return
	}
	r.dev.Delete(r.program, r.vao, r.texture, r.transformSBO)
	r.program, r.vao, r.texture, r.transformSBO = 0, 0, 0, 0
	r.ready = false
}
