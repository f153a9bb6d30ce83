package main

import (
	"errors"
	"math/rand/v2"

	"spritegl/internal/input"
	"spritegl/internal/logging"
	"spritegl/internal/sprite"

	"github.com/go-gl/mathgl/mgl32"
)

// Sprites in assets/textures/TEXTURE_ATLAS.png.
const (
	spriteRed sprite.SpriteID = iota
	spriteGreen
	spriteBlue
	spriteYellow
	spriteBanner
	numSprites
)

const (
	maxSpeed  = 240 // pixels per second
	spawnStep = 16
)

func demoAtlas() (*sprite.Atlas, error) {
	a := sprite.NewAtlas()
	layout := map[sprite.SpriteID]sprite.Sprite{
		spriteRed:    {AtlasOffset: [2]int32{0, 0}, Size: [2]int32{32, 32}},
		spriteGreen:  {AtlasOffset: [2]int32{32, 0}, Size: [2]int32{32, 32}},
		spriteBlue:   {AtlasOffset: [2]int32{64, 0}, Size: [2]int32{32, 32}},
		spriteYellow: {AtlasOffset: [2]int32{96, 0}, Size: [2]int32{32, 32}},
		spriteBanner: {AtlasOffset: [2]int32{0, 32}, Size: [2]int32{128, 32}},
	}
	for id, s := range layout {
		if err := a.Register(id, s); err != nil {
			return nil, err
		}
	}
	return a, nil
}

type bouncer struct {
	pos, vel mgl32.Vec2
	id       sprite.SpriteID
	scale    float32
}

// demo bounces sprites around the window. Space adds more, a left click adds
// one at the cursor and Escape closes the window.
type demo struct {
	atlas    *sprite.Atlas
	rng      *rand.Rand
	stop     func()
	bouncers []bouncer
	warned   bool
}

func newDemo(atlas *sprite.Atlas, seed uint64, stop func()) *demo {
	return &demo{
		atlas: atlas,
		rng:   rand.New(rand.NewPCG(seed, seed>>1|1)),
		stop:  stop,
	}
}

func (d *demo) spawn(n int, screen input.ScreenSize) {
	for i := 0; i < n; i++ {
		d.spawnAt(mgl32.Vec2{
			d.rng.Float32() * float32(screen.Width),
			d.rng.Float32() * float32(screen.Height),
		})
	}
}

func (d *demo) spawnAt(pos mgl32.Vec2) {
	if len(d.bouncers) >= sprite.MaxTransforms {
		return
	}
	d.bouncers = append(d.bouncers, bouncer{
		pos:   pos,
		vel:   mgl32.Vec2{d.rng.Float32()*2 - 1, d.rng.Float32()*2 - 1}.Mul(maxSpeed),
		id:    sprite.SpriteID(d.rng.IntN(int(numSprites))),
		scale: 1 + d.rng.Float32(),
	})
}

func (d *demo) Update(dt float64, in *input.State, batch *sprite.Batch) {
	if in.JustPressed(input.KeyEscape) {
		d.stop()
	}
	if in.JustPressed(input.KeySpace) {
		d.spawn(spawnStep, in.ScreenSize())
	}
	if in.ButtonJustPressed(input.ButtonLeft) {
		d.spawnAt(in.Cursor())
	}

	screen := in.ScreenSize().Vec2()
	step := float32(dt)
	for i := range d.bouncers {
		b := &d.bouncers[i]
		s, _ := d.atlas.Get(b.id)
		half := mgl32.Vec2{float32(s.Size[0]), float32(s.Size[1])}.Mul(b.scale * 0.5)

		b.pos = b.pos.Add(b.vel.Mul(step))
		for axis := 0; axis < 2; axis++ {
			if b.pos[axis] < half[axis] {
				b.pos[axis] = half[axis]
				b.vel[axis] = abs(b.vel[axis])
			} else if hi := screen[axis] - half[axis]; b.pos[axis] > hi {
				b.pos[axis] = max(hi, half[axis])
				b.vel[axis] = -abs(b.vel[axis])
			}
		}

		if err := batch.Draw(d.atlas, b.id, b.pos, b.scale); err != nil {
			if errors.Is(err, sprite.ErrBatchFull) && !d.warned {
				logging.Logger().Warn("sprite batch full", "sprites", len(d.bouncers))
				d.warned = true
			}
			break
		}
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
