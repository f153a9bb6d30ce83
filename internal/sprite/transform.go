package sprite

import (
	"errors"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxTransforms is the capacity of the per-frame transform buffer.
const MaxTransforms = 1000

// ErrBatchFull is returned by Push when the batch already holds MaxTransforms records.
var ErrBatchFull = errors.New("sprite: transform batch is full")

// Transform is one instance record as read by the vertex stage.
// Field order and sizes match the std430 layout of the shader's storage block.
type Transform struct {
	AtlasOffset [2]int32
	SpriteSize  [2]int32
	Pos         mgl32.Vec2
	Size        mgl32.Vec2
}

// TransformSize is the size in bytes of one Transform on the GPU.
const TransformSize = int(unsafe.Sizeof(Transform{}))

// Batch is the fixed-capacity list of transforms submitted during one frame.
// Storage is allocated once; Clear only resets the live count.
type Batch struct {
	transforms []Transform
	count      int
}

// NewBatch allocates a batch with room for MaxTransforms records.
func NewBatch() *Batch {
	return &Batch{transforms: make([]Transform, MaxTransforms)}
}

// Push appends t to the batch.
func (b *Batch) Push(t Transform) error {
	if b.count >= len(b.transforms) {
		return ErrBatchFull
	}
	b.transforms[b.count] = t
	b.count++
	return nil
}

// Len returns the number of live transforms.
func (b *Batch) Len() int { return b.count }

// Cap returns the fixed capacity.
func (b *Batch) Cap() int { return len(b.transforms) }

// Transforms returns the live prefix. The slice aliases the batch storage and
// is only valid until the next Push or Clear.
func (b *Batch) Transforms() []Transform {
	return b.transforms[:b.count]
}

// Backing returns the full-capacity storage, used to seed the GPU buffer.
func (b *Batch) Backing() []Transform {
	return b.transforms
}

// Clear drops every live transform.
func (b *Batch) Clear() {
	b.count = 0
}
