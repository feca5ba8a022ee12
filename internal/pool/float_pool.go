package pool

import "sync"

// FloatPool implements a pool of float64 slices used as scratch space for sorted copies
type FloatPool struct {
	pool sync.Pool
}

// NewFloatPool creates a new pool whose fresh buffers start with the given capacity
func NewFloatPool(capacity int) *FloatPool {
	return &FloatPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]float64, 0, capacity)
				return &buffer
			},
		},
	}
}

// Copy retrieves a buffer from the pool and fills it with a copy of src.
// The caller owns the buffer until it is handed back with Put.
func (fp *FloatPool) Copy(src []float64) *[]float64 {
	buffer := fp.pool.Get().(*[]float64)
	*buffer = append((*buffer)[:0], src...)
	return buffer
}

// Put returns a buffer to the pool for reuse
func (fp *FloatPool) Put(buffer *[]float64) {
	// Oversized buffers would pin memory for the life of the pool.
	if cap(*buffer) > maxPooledCapacity {
		return
	}
	*buffer = (*buffer)[:0]
	fp.pool.Put(buffer)
}

const maxPooledCapacity = 1 << 16

// Default is the shared pool used by the proximity core.
var Default = NewFloatPool(64)
