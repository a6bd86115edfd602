package alloc

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/arloliu/bstr/errs"
	"github.com/arloliu/bstr/internal/options"
)

// OOMHandler is invoked when an allocation request cannot be satisfied.
// The handler receives the requested size in bytes. A handler that returns
// lets the failed operation surface errs.ErrAllocationFailure to its caller;
// a handler that panics or exits aborts instead.
type OOMHandler func(size int)

// Option configures an Allocator.
type Option = options.Option[*Allocator]

// WithLimit sets a byte budget. A request that would push the used-bytes
// counter past the budget fails. Zero means unlimited.
func WithLimit(limit int64) Option {
	return func(a *Allocator) {
		a.limit = limit
	}
}

// WithOOMHandler replaces the out-of-memory policy.
func WithOOMHandler(handler OOMHandler) Option {
	return func(a *Allocator) {
		a.oomHandler = handler
	}
}

// Allocator hands out byte blocks while tracking the total bytes currently
// allocated. The zero value is not usable; use New.
type Allocator struct {
	used  atomic.Int64
	limit int64

	mu         sync.RWMutex
	oomHandler OOMHandler
}

var oomLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// defaultOOM logs the requested size and panics, mirroring the traditional
// fatal default of tracked allocators.
func defaultOOM(size int) {
	oomLogger.Error().Int("size", size).Msg("bstr: out of memory")
	panic(fmt.Sprintf("bstr: out of memory trying to allocate %d bytes", size))
}

// New creates an Allocator with the given options. Without options the
// allocator is unlimited and its OOM policy is fatal.
func New(opts ...Option) *Allocator {
	a := &Allocator{oomHandler: defaultOOM}
	options.Apply(a, opts...)

	return a
}

// SetOOMHandler replaces the out-of-memory policy at runtime. A nil handler
// restores the fatal default.
func (a *Allocator) SetOOMHandler(handler OOMHandler) {
	if handler == nil {
		handler = defaultOOM
	}

	a.mu.Lock()
	a.oomHandler = handler
	a.mu.Unlock()
}

// Alloc returns a new zeroed block of exactly size bytes and charges it to
// the used-bytes counter.
//
// Returns errs.ErrAllocationFailure if the budget is exceeded and the OOM
// policy returns. Panics if size is negative.
func (a *Allocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		panic("alloc: negative allocation size")
	}

	if a.limit > 0 && a.used.Load()+int64(size) > a.limit {
		return nil, a.fail(size)
	}

	b := make([]byte, size)
	a.used.Add(int64(size))

	return b, nil
}

// Realloc returns a block of exactly size bytes holding the prefix of the old
// block that still fits, releases the old block, and adjusts the counter by
// the difference. A nil old block behaves like Alloc.
//
// Returns errs.ErrAllocationFailure if the budget is exceeded and the OOM
// policy returns; the old block is left charged and untouched in that case.
func (a *Allocator) Realloc(b []byte, size int) ([]byte, error) {
	if b == nil {
		return a.Alloc(size)
	}
	if size < 0 {
		panic("alloc: negative allocation size")
	}

	grow := int64(size) - int64(cap(b))
	if a.limit > 0 && grow > 0 && a.used.Load()+grow > a.limit {
		return nil, a.fail(size)
	}

	nb := make([]byte, size)
	copy(nb, b)
	a.used.Add(grow)

	return nb, nil
}

// Free releases a block obtained from Alloc or Realloc, crediting the
// counter. Freeing nil is a no-op. The actual memory is reclaimed by the
// garbage collector once no references remain.
func (a *Allocator) Free(b []byte) {
	if b == nil {
		return
	}

	a.used.Add(-int64(cap(b)))
}

// Used returns the bytes currently charged to this allocator.
func (a *Allocator) Used() int64 {
	return a.used.Load()
}

// Limit returns the configured byte budget, zero meaning unlimited.
func (a *Allocator) Limit() int64 {
	return a.limit
}

func (a *Allocator) fail(size int) error {
	a.mu.RLock()
	handler := a.oomHandler
	a.mu.RUnlock()

	if handler != nil {
		handler(size)
	}

	return fmt.Errorf("%w: %d bytes requested", errs.ErrAllocationFailure, size)
}

// defaultAllocator backs the package-level functions and is what the bstr
// package allocates from unless told otherwise.
var defaultAllocator atomic.Pointer[Allocator]

func init() {
	defaultAllocator.Store(New())
}

// Default returns the process-wide allocator.
func Default() *Allocator {
	return defaultAllocator.Load()
}

// SetDefault replaces the process-wide allocator. Buffers already allocated
// remain charged to the allocator that created them, so swapping the default
// while buffers are live skews both counters; do it at program start.
func SetDefault(a *Allocator) {
	if a == nil {
		panic("alloc: nil allocator")
	}

	defaultAllocator.Store(a)
}

// Used reports the bytes currently charged to the default allocator.
func Used() int64 {
	return Default().Used()
}
