package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestArenaAllocAndReset(t *testing.T) {
	a := NewArena(16)
	p, err := a.Alloc(10)
	if err != nil {
		t.Fatalf("Alloc(10): %v", err)
	}
	if len(p) != 10 || cap(p) != 10 {
		t.Fatalf("len/cap = %d/%d, want 10/10", len(p), cap(p))
	}
	if _, err := a.Alloc(7); !errors.Is(err, ErrArenaFull) {
		t.Fatalf("Alloc(7) with 6 free: err = %v, want ErrArenaFull", err)
	}
	if a.Used() != 10 {
		t.Fatalf("Used = %d, want 10", a.Used())
	}

	p[0] = 0xff
	a.Reset()
	q, err := a.Alloc(16)
	if err != nil {
		t.Fatalf("Alloc(16) after Reset: %v", err)
	}
	if q[0] != 0 {
		t.Fatalf("reused memory not zeroed: q[0] = %#x", q[0])
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "quad.vert")
	src := "#version 430 core\nvoid main() {}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	a := NewArena(1024)
	got, err := ReadFile(a, path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != src {
		t.Fatalf("ReadFile = %q, want %q", got, src)
	}
	if a.Used() != len(src) {
		t.Fatalf("Used = %d, want %d", a.Used(), len(src))
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(NewArena(64), filepath.Join(dir, "missing.frag"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file: err = %v, want fs.ErrNotExist", err)
	}

	path := filepath.Join(dir, "big.frag")
	if err := os.WriteFile(path, make([]byte, 100), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = ReadFile(NewArena(64), path)
	if !errors.Is(err, ErrArenaFull) {
		t.Fatalf("oversized file: err = %v, want ErrArenaFull", err)
	}
}

func TestDecodeRGBA8(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

	path := filepath.Join(t.TempDir(), "atlas.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := DecodeRGBA8(path)
	if err != nil {
		t.Fatalf("DecodeRGBA8: %v", err)
	}
	if img.Rect.Dx() != 3 || img.Rect.Dy() != 2 {
		t.Fatalf("size = %v, want 3x2", img.Rect.Size())
	}
	if img.Stride != 12 {
		t.Fatalf("Stride = %d, want 12", img.Stride)
	}
	if got := img.NRGBAAt(2, 1); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 128}) {
		t.Fatalf("pixel (2,1) = %v, want {10 20 30 128}", got)
	}
}

func TestDecodeRGBA8Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := DecodeRGBA8(filepath.Join(dir, "nope.png")); err == nil {
		t.Fatal("missing file decoded without error")
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeRGBA8(bad); err == nil {
		t.Fatal("garbage decoded without error")
	}
}
