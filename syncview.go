package bytecursor

import (
	"sync"
	"unsafe"
)

// SyncView relaxes the single-goroutine rule for the backing store: all
// views derived from one SyncView share a mutex, and every byte-level
// access takes it. Cursor state stays unsynchronized on purpose — each
// SyncView is still owned by exactly one goroutine; the lock only makes
// the shared bytes safe to reach from several of them.
type SyncView struct {
	mu *sync.Mutex
	v  View
}

// NewSync allocates a zero-filled store of the given capacity guarded by
// a fresh lock.
func NewSync(capacity, limit int) *SyncView {
	return &SyncView{mu: new(sync.Mutex), v: *New(capacity, limit)}
}

// Cursor operations touch only this view's own state and take no lock.

func (s *SyncView) Capacity() int      { return s.v.Capacity() }
func (s *SyncView) Position() int      { return s.v.Position() }
func (s *SyncView) Limit() int         { return s.v.Limit() }
func (s *SyncView) Remaining() int     { return s.v.Remaining() }
func (s *SyncView) HasRemaining() bool { return s.v.HasRemaining() }
func (s *SyncView) Mark()              { s.v.Mark() }
func (s *SyncView) Reset()             { s.v.Reset() }
func (s *SyncView) SetLimit(n int)     { s.v.SetLimit(n) }
func (s *SyncView) SetPosition(n int)  { s.v.SetPosition(n) }
func (s *SyncView) Clear()             { s.v.Clear() }
func (s *SyncView) Flip()              { s.v.Flip() }
func (s *SyncView) Rewind()            { s.v.Rewind() }

// Slice returns a view over the remaining window sharing this view's
// store and lock.
func (s *SyncView) Slice() *SyncView {
	return &SyncView{mu: s.mu, v: *s.v.Slice()}
}

// Duplicate returns a view over the same window with its own cursor,
// sharing this view's store and lock.
func (s *SyncView) Duplicate() *SyncView {
	return &SyncView{mu: s.mu, v: *s.v.Duplicate()}
}

func (s *SyncView) Get() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Get()
}

func (s *SyncView) GetAt(i int) byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.GetAt(i)
}

func (s *SyncView) Put(x byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Put(x)
}

func (s *SyncView) PutAt(x byte, i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.PutAt(x, i)
}

func (s *SyncView) GetInto(dst []byte, off, length int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.GetInto(dst, off, length)
}

func (s *SyncView) PutFrom(src []byte, off, length int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.PutFrom(src, off, length)
}

// Snapshot copies the remaining window under the lock.
func (s *SyncView) Snapshot() ByteView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Snapshot()
}

// PutView copies src's remaining window into this view. Views over one
// store share one lock; a transfer between separate stores takes both
// locks in address order so two opposing transfers cannot deadlock.
func (s *SyncView) PutView(src *SyncView) {
	if s == src {
		panic(ErrIllegalArgument)
	}
	if s.mu == src.mu {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.v.PutView(&src.v)
		return
	}
	first, second := s.mu, src.mu
	if uintptr(unsafe.Pointer(first)) > uintptr(unsafe.Pointer(second)) {
		first, second = second, first
	}
	first.Lock()
	defer first.Unlock()
	second.Lock()
	defer second.Unlock()
	s.v.PutView(&src.v)
}
