package config

import "sync"

// FrameSettings holds values that may change while the frame loop runs
type FrameSettings struct {
	mu       sync.RWMutex
	fpsLimit int // 0 = unlimited
}

var globalFrameSettings = &FrameSettings{
	fpsLimit: 144,
}

// GetFPSLimit returns the current frame cap, 0 meaning unlimited
func GetFPSLimit() int {
	globalFrameSettings.mu.RLock()
	defer globalFrameSettings.mu.RUnlock()
	return globalFrameSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalFrameSettings.mu.Lock()
	defer globalFrameSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalFrameSettings.fpsLimit = limit
}
