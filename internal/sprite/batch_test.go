package sprite

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTransformLayout(t *testing.T) {
	// std430: ivec2 atlasOffset, ivec2 spriteSize, vec2 pos, vec2 size
	if TransformSize != 32 {
		t.Fatalf("TransformSize = %d, want 32", TransformSize)
	}
}

func TestBatchPushAndClear(t *testing.T) {
	b := NewBatch()
	if b.Cap() != MaxTransforms {
		t.Fatalf("Cap = %d, want %d", b.Cap(), MaxTransforms)
	}
	for i := 0; i < 3; i++ {
		if err := b.Push(Transform{Pos: mgl32.Vec2{float32(i), 0}}); err != nil {
			t.Fatalf("Push %d: %v", i, err)
		}
	}
	if b.Len() != 3 {
		t.Fatalf("Len = %d, want 3", b.Len())
	}
	got := b.Transforms()
	if len(got) != 3 || got[2].Pos[0] != 2 {
		t.Fatalf("Transforms = %v, want 3 records ending at x=2", got)
	}

	b.Clear()
	if b.Len() != 0 || len(b.Transforms()) != 0 {
		t.Fatalf("after Clear: Len = %d, want 0", b.Len())
	}
	if len(b.Backing()) != MaxTransforms {
		t.Fatalf("Backing len = %d, want %d", len(b.Backing()), MaxTransforms)
	}
}

func TestBatchPushFull(t *testing.T) {
	b := NewBatch()
	for i := 0; i < MaxTransforms; i++ {
		if err := b.Push(Transform{}); err != nil {
			t.Fatalf("Push %d: %v", i, err)
		}
	}
	if err := b.Push(Transform{}); !errors.Is(err, ErrBatchFull) {
		t.Fatalf("Push past capacity: err = %v, want ErrBatchFull", err)
	}
	if b.Len() != MaxTransforms {
		t.Fatalf("Len = %d, want %d", b.Len(), MaxTransforms)
	}
}

func TestBatchDrawCentresSprite(t *testing.T) {
	a := NewAtlas()
	if err := a.Register(1, Sprite{AtlasOffset: [2]int32{16, 0}, Size: [2]int32{16, 8}}); err != nil {
		t.Fatal(err)
	}
	b := NewBatch()
	if err := b.Draw(a, 1, mgl32.Vec2{100, 50}, 2); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	tr := b.Transforms()[0]
	if tr.AtlasOffset != [2]int32{16, 0} || tr.SpriteSize != [2]int32{16, 8} {
		t.Errorf("atlas rect = %v %v, want [16 0] [16 8]", tr.AtlasOffset, tr.SpriteSize)
	}
	if tr.Size != (mgl32.Vec2{32, 16}) {
		t.Errorf("Size = %v, want [32 16]", tr.Size)
	}
	if tr.Pos != (mgl32.Vec2{84, 42}) {
		t.Errorf("Pos = %v, want [84 42]", tr.Pos)
	}
}

func TestAtlasRejectsBadSprites(t *testing.T) {
	a := NewAtlas()
	tests := []struct {
		name string
		s    Sprite
	}{
		{"zero size", Sprite{Size: [2]int32{0, 4}}},
		{"negative offset", Sprite{AtlasOffset: [2]int32{-1, 0}, Size: [2]int32{4, 4}}},
	}
	for _, tt := range tests {
		if err := a.Register(7, tt.s); err == nil {
			t.Errorf("%s: Register succeeded, want error", tt.name)
		}
	}
	b := NewBatch()
	if err := b.Draw(a, 7, mgl32.Vec2{}, 1); err == nil {
		t.Fatal("Draw of unregistered sprite succeeded")
	}
	if b.Len() != 0 {
		t.Fatalf("Len = %d after failed Draw, want 0", b.Len())
	}
}
