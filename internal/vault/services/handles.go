package services

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/docvault/internal/common"
	"github.com/google/uuid"
)

// ViewHandle carries decrypted content for transient presentation. It becomes
// unreadable after the registry's TTL or an explicit Release, whichever comes
// first, so plaintext never lingers indefinitely after a view.
type ViewHandle struct {
	ID       string
	FileName string
	MIMEType string

	mu       sync.Mutex
	data     []byte
	released bool
	timer    *time.Timer
}

// Bytes returns the decrypted content, or common.ErrHandleExpired once the
// handle has been released or timed out.
func (h *ViewHandle) Bytes() ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return nil, common.ErrHandleExpired
	}
	buf := make([]byte, len(h.data))
	copy(buf, h.data)
	return buf, nil
}

// Release invalidates the handle early and wipes the plaintext. Safe to call
// more than once.
func (h *ViewHandle) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return
	}
	h.released = true
	if h.timer != nil {
		h.timer.Stop()
	}
	for i := range h.data {
		h.data[i] = 0
	}
	h.data = nil
}

// HandleRegistry tracks open view handles and enforces their expiry window.
type HandleRegistry struct {
	mu      sync.Mutex
	ttl     time.Duration
	handles map[string]*ViewHandle
}

func NewHandleRegistry(ttl time.Duration) *HandleRegistry {
	return &HandleRegistry{ttl: ttl, handles: make(map[string]*ViewHandle)}
}

// Open registers plaintext under a fresh handle. Expiry is armed immediately;
// the consumer abandoning the handle does not keep it alive.
func (r *HandleRegistry) Open(fileName, mimeType string, data []byte) *ViewHandle {
	h := &ViewHandle{
		ID:       uuid.NewString(),
		FileName: fileName,
		MIMEType: mimeType,
		data:     data,
	}

	r.mu.Lock()
	r.handles[h.ID] = h
	r.mu.Unlock()

	h.timer = time.AfterFunc(r.ttl, func() { r.Release(h.ID) })
	return h
}

// Get looks up an open handle; expired or unknown ids report
// common.ErrHandleExpired.
func (r *HandleRegistry) Get(id string) (*ViewHandle, error) {
	r.mu.Lock()
	h, ok := r.handles[id]
	r.mu.Unlock()
	if !ok {
		return nil, common.ErrHandleExpired
	}
	return h, nil
}

// Release drops the handle from the registry and wipes its content.
func (r *HandleRegistry) Release(id string) {
	r.mu.Lock()
	h, ok := r.handles[id]
	delete(r.handles, id)
	r.mu.Unlock()
	if ok {
		h.Release()
	}
}
