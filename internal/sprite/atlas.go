package sprite

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// SpriteID names a sub-image of the texture atlas.
type SpriteID int

// Sprite locates a sub-image inside the atlas, in texels.
type Sprite struct {
	AtlasOffset [2]int32
	Size        [2]int32
}

// Atlas maps sprite IDs to their atlas rectangles.
type Atlas struct {
	sprites map[SpriteID]Sprite
}

// NewAtlas creates an empty atlas registry
func NewAtlas() *Atlas {
	return &Atlas{sprites: make(map[SpriteID]Sprite)}
}

// Register adds or replaces the rectangle for id.
func (a *Atlas) Register(id SpriteID, s Sprite) error {
	if s.Size[0] <= 0 || s.Size[1] <= 0 {
		return fmt.Errorf("sprite %d: size must be positive, got %dx%d", id, s.Size[0], s.Size[1])
	}
	if s.AtlasOffset[0] < 0 || s.AtlasOffset[1] < 0 {
		return fmt.Errorf("sprite %d: negative atlas offset %v", id, s.AtlasOffset)
	}
	a.sprites[id] = s
	return nil
}

// Get returns the rectangle registered for id.
func (a *Atlas) Get(id SpriteID) (Sprite, bool) {
	s, ok := a.sprites[id]
	return s, ok
}

// Draw pushes a transform for the sprite centred on pos and scaled by scale.
func (b *Batch) Draw(a *Atlas, id SpriteID, pos mgl32.Vec2, scale float32) error {
	s, ok := a.Get(id)
	if !ok {
		return fmt.Errorf("sprite %d: not registered", id)
	}
	size := mgl32.Vec2{float32(s.Size[0]), float32(s.Size[1])}.Mul(scale)
	return b.Push(Transform{
		AtlasOffset: s.AtlasOffset,
		SpriteSize:  s.Size,
		Pos:         pos.Sub(size.Mul(0.5)),
		Size:        size,
	})
}
