package assets

import "errors"

// ErrArenaFull is returned when an allocation does not fit in the remaining scratch space.
var ErrArenaFull = errors.New("assets: scratch arena exhausted")

// Arena is a bump allocator over a fixed byte slice. Allocations are only
// released all at once by Reset.
type Arena struct {
	buf  []byte
	used int
}

// NewArena allocates an arena of size bytes.
func NewArena(size int) *Arena {
	return &Arena{buf: make([]byte, size)}
}

// Alloc returns n zeroed bytes from the arena.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 || n > len(a.buf)-a.used {
		return nil, ErrArenaFull
	}
	p := a.buf[a.used : a.used+n : a.used+n]
	clear(p)
	a.used += n
	return p, nil
}

// Used returns the number of bytes handed out since the last Reset.
func (a *Arena) Used() int { return a.used }

// Cap returns the total arena size.
func (a *Arena) Cap() int { return len(a.buf) }

// Reset makes the whole arena available again. Slices returned earlier must
// not be used afterwards.
func (a *Arena) Reset() { a.used = 0 }
