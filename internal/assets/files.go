package assets

import (
	"fmt"
	"io"
	"os"
)

// ReadFile reads the whole file at path into memory taken from arena.
func ReadFile(arena *Arena, path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("could not stat %s: %w", path, err)
	}

	buf, err := arena.Alloc(int(info.Size()))
	if err != nil {
		return nil, fmt.Errorf("could not read %s (%d bytes, %d free): %w",
			path, info.Size(), arena.Cap()-arena.Used(), err)
	}
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	return buf, nil
}
