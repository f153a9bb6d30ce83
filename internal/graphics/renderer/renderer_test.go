package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spritegl/internal/assets"
	"spritegl/internal/graphics/gldebug"
	"spritegl/internal/input"
	"spritegl/internal/sprite"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeDevice records the GL calls issued by the renderer.
type fakeDevice struct {
	calls []string

	debugHandler func(gldebug.Message)
	buildErr     error
	vertexSrc    string
	fragmentSrc  string
	atlas        *image.NRGBA
	seeded       int
	binding      uint32
	uploaded     []sprite.Transform
	draws        []int32
	viewport     [4]int32
	uniform      mgl32.Vec2
	clearColor   mgl32.Vec4
	clearDepth   float64
	usedProgram  uint32
	deleted      bool
}

func (d *fakeDevice) call(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) InstallDebugOutput(h func(gldebug.Message)) {
	d.call("debug")
	d.debugHandler = h
}

func (d *fakeDevice) BuildProgram(v, f []byte) (uint32, error) {
	d.call("program")
	if d.buildErr != nil {
		return 0, d.buildErr
	}
	d.vertexSrc, d.fragmentSrc = string(v), string(f)
	return 3, nil
}

func (d *fakeDevice) CreateVertexArray() uint32 {
	d.call("vao")
	return 1
}

func (d *fakeDevice) UploadAtlas(img *image.NRGBA) uint32 {
	d.call("atlas")
	d.atlas = img
	return 2
}

func (d *fakeDevice) CreateStorageBuffer(binding uint32, data []sprite.Transform) uint32 {
	d.call("ssbo")
	d.binding = binding
	d.seeded = len(data)
	return 4
}

func (d *fakeDevice) UpdateStorageBuffer(buffer uint32, data []sprite.Transform) {
	d.call("upload %d", len(data))
	d.uploaded = append([]sprite.Transform(nil), data...)
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	d.call("uniform %s", name)
	return 5
}

func (d *fakeDevice) ConfigurePipeline() { d.call("pipeline") }

func (d *fakeDevice) UseProgram(p uint32) {
	d.call("use %d", p)
	d.usedProgram = p
}

func (d *fakeDevice) Clear(c mgl32.Vec4, depth float64) {
	d.call("clear")
	d.clearColor, d.clearDepth = c, depth
}

func (d *fakeDevice) Viewport(x, y, w, h int32) {
	d.call("viewport")
	d.viewport = [4]int32{x, y, w, h}
}

func (d *fakeDevice) Uniform2f(loc int32, v mgl32.Vec2) {
	d.call("uniform2f %d", loc)
	d.uniform = v
}

func (d *fakeDevice) DrawInstanced(vertices, instances int32) {
	d.call("draw %d x%d", vertices, instances)
	d.draws = append(d.draws, instances)
}

func (d *fakeDevice) Delete(program, vao, texture, buffer uint32) {
	d.call("delete")
	d.deleted = true
}

func writeAssets(t *testing.T) Assets {
	t.Helper()
	dir := t.TempDir()
	a := Assets{
		VertexShader:   filepath.Join(dir, "quad.vert"),
		FragmentShader: filepath.Join(dir, "quad.frag"),
		Atlas:          filepath.Join(dir, "atlas.png"),
	}
	if err := os.WriteFile(a.VertexShader, []byte("#version 430 core\n// vert\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(a.FragmentShader, []byte("#version 430 core\n// frag\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	f, err := os.Create(a.Atlas)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return a
}

func newInitialized(t *testing.T) (*Renderer, *fakeDevice, *sprite.Batch) {
	t.Helper()
	dev := &fakeDevice{}
	batch := sprite.NewBatch()
	r := NewRenderer(dev, batch, writeAssets(t), gldebug.NewSink(nil, false))
	if err := r.Init(assets.NewArena(4096)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	dev.calls = nil
	return r, dev, batch
}

func TestInitOrder(t *testing.T) {
	dev := &fakeDevice{}
	batch := sprite.NewBatch()
	r := NewRenderer(dev, batch, writeAssets(t), gldebug.NewSink(nil, false))
	scratch := assets.NewArena(4096)
	if err := r.Init(scratch); err != nil {
		t.Fatalf("Init: %v", err)
	}

	want := "debug,program,vao,atlas,ssbo,uniform screenSize,pipeline,use 3"
	if got := strings.Join(dev.calls, ","); got != want {
		t.Fatalf("calls = %s\nwant    %s", got, want)
	}
	if !strings.Contains(dev.vertexSrc, "// vert") || !strings.Contains(dev.fragmentSrc, "// frag") {
		t.Fatalf("shader sources = %q, %q", dev.vertexSrc, dev.fragmentSrc)
	}
	if scratch.Used() == 0 {
		t.Fatal("shader sources not read into scratch memory")
	}
	if dev.binding != TransformBinding || dev.seeded != sprite.MaxTransforms {
		t.Fatalf("ssbo binding=%d seeded=%d, want %d/%d", dev.binding, dev.seeded, TransformBinding, sprite.MaxTransforms)
	}
	if dev.atlas == nil || dev.atlas.NRGBAAt(0, 0) != (color.NRGBA{R: 255, A: 255}) {
		t.Fatal("atlas pixels not uploaded")
	}
	if dev.debugHandler == nil {
		t.Fatal("debug output not installed")
	}
}

func TestInitShaderMissing(t *testing.T) {
	dev := &fakeDevice{}
	a := writeAssets(t)
	a.FragmentShader = filepath.Join(t.TempDir(), "missing.frag")
	r := NewRenderer(dev, sprite.NewBatch(), a, nil)

	err := r.Init(assets.NewArena(4096))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
	if dev.usedProgram != 0 {
		t.Fatalf("program %d bound after failed Init", dev.usedProgram)
	}
	if len(dev.calls) != 0 {
		t.Fatalf("device touched before shaders were read: %v", dev.calls)
	}
	if err := r.Render(input.ScreenSize{Width: 1, Height: 1}); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Render after failed Init: err = %v, want ErrNotInitialized", err)
	}
}

func TestInitCompileError(t *testing.T) {
	dev := &fakeDevice{buildErr: errors.New("failed to compile vertex shader: 0:3(1): error: syntax error")}
	r := NewRenderer(dev, sprite.NewBatch(), writeAssets(t), nil)
	err := r.Init(assets.NewArena(4096))
	if err == nil || !strings.Contains(err.Error(), "0:3(1): error: syntax error") {
		t.Fatalf("err = %v, want the driver info log", err)
	}
	if dev.usedProgram != 0 {
		t.Fatal("program bound after compile failure")
	}
}

func TestInitAtlasMissing(t *testing.T) {
	dev := &fakeDevice{}
	a := writeAssets(t)
	a.Atlas = filepath.Join(t.TempDir(), "none.png")
	r := NewRenderer(dev, sprite.NewBatch(), a, nil)
	if err := r.Init(assets.NewArena(4096)); err == nil {
		t.Fatal("Init succeeded without an atlas")
	}
	if dev.usedProgram != 0 {
		t.Fatal("program bound after texture failure")
	}
}

func TestInitScratchTooSmall(t *testing.T) {
	r := NewRenderer(&fakeDevice{}, sprite.NewBatch(), writeAssets(t), nil)
	if err := r.Init(assets.NewArena(8)); !errors.Is(err, assets.ErrArenaFull) {
		t.Fatalf("err = %v, want ErrArenaFull", err)
	}
}

func TestRenderThreeTransforms(t *testing.T) {
	r, dev, batch := newInitialized(t)
	for i := 0; i < 3; i++ {
		if err := batch.Push(sprite.Transform{Pos: mgl32.Vec2{float32(i), 0}}); err != nil {
			t.Fatal(err)
		}
	}

	if err := r.Render(input.ScreenSize{Width: 1280, Height: 720}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "clear,viewport,uniform2f 5,upload 3,draw 6 x3"
	if got := strings.Join(dev.calls, ","); got != want {
		t.Fatalf("calls = %s\nwant    %s", got, want)
	}
	if len(dev.draws) != 1 || dev.draws[0] != 3 {
		t.Fatalf("draws = %v, want one draw of 3 instances", dev.draws)
	}
	if batch.Len() != 0 {
		t.Fatalf("batch.Len = %d after Render, want 0", batch.Len())
	}
	if dev.uploaded[2].Pos[0] != 2 {
		t.Fatalf("uploaded = %v", dev.uploaded)
	}
	if dev.clearColor != ClearColor || dev.clearDepth != 0 {
		t.Fatalf("clear = %v depth %v", dev.clearColor, dev.clearDepth)
	}
}

func TestRenderEmptyBatchStillClears(t *testing.T) {
	r, dev, batch := newInitialized(t)
	if err := r.Render(input.ScreenSize{Width: 640, Height: 480}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := strings.Join(dev.calls, ","); got != "clear,viewport,uniform2f 5" {
		t.Fatalf("calls = %s", got)
	}
	if len(dev.draws) != 0 {
		t.Fatalf("draws = %v, want none", dev.draws)
	}
	if batch.Len() != 0 {
		t.Fatal("batch not empty")
	}
}

func TestRenderUsesCurrentScreenSize(t *testing.T) {
	r, dev, _ := newInitialized(t)
	sizes := []input.ScreenSize{{Width: 800, Height: 600}, {Width: 1920, Height: 1080}, {Width: 0, Height: 0}}
	for _, s := range sizes {
		if err := r.Render(s); err != nil {
			t.Fatal(err)
		}
		if dev.viewport != [4]int32{0, 0, int32(s.Width), int32(s.Height)} {
			t.Fatalf("viewport = %v for %v", dev.viewport, s)
		}
		if dev.uniform != s.Vec2() {
			t.Fatalf("screenSize uniform = %v, want %v", dev.uniform, s.Vec2())
		}
	}
}

func TestRenderFullBatch(t *testing.T) {
	r, dev, batch := newInitialized(t)
	for batch.Push(sprite.Transform{}) == nil {
	}
	if err := r.Render(input.ScreenSize{Width: 1, Height: 1}); err != nil {
		t.Fatal(err)
	}
	if len(dev.uploaded) != sprite.MaxTransforms || dev.draws[0] != sprite.MaxTransforms {
		t.Fatalf("uploaded %d, drew %v; want %d", len(dev.uploaded), dev.draws, sprite.MaxTransforms)
	}
}

func TestDispose(t *testing.T) {
	r, dev, _ := newInitialized(t)
	r.Dispose()
	if !dev.deleted {
		t.Fatal("resources not deleted")
	}
	dev.deleted = false
	r.Dispose()
	if dev.deleted {
		t.Fatal("second Dispose deleted again")
	}
	if err := r.Render(input.ScreenSize{}); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Render after Dispose: err = %v", err)
	}
}
