package models

import (
	"sync"
	"time"
)

// ContentTypeWAV is the media type produced by the synthesis engine.
const ContentTypeWAV = "audio/wav"

// Clip is a synthesized audio payload owned by one session.
// After Release the payload is dropped and Data returns nil.
type Clip struct {
	ID          string
	ContentType string
	CreatedAt   time.Time

	mu       sync.RWMutex
	data     []byte
	released bool
}

// NewClip wraps data as a clip.
func NewClip(id string, data []byte) *Clip {
	return &Clip{
		ID:          id,
		ContentType: ContentTypeWAV,
		CreatedAt:   time.Now(),
		data:        data,
	}
}

// Data returns the payload or nil once the clip has been released.
func (c *Clip) Data() []byte {
	if c == nil {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data
}

// Release drops the payload. Calling it more than once is a no-op.
func (c *Clip) Release() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = nil
	c.released = true
}

// Released reports whether Release was called.
func (c *Clip) Released() bool {
	if c == nil {
		return true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.released
}
