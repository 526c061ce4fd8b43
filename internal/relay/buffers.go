package relay

import "sync"

// copyBufferSize is the size of each relay buffer (64 KiB). A pipe takes one
// buffer for its whole lifetime; there is no per-chunk allocation.
const copyBufferSize = 64 * 1024

// bufferPool holds reusable relay buffers so short-lived sessions do not
// churn the garbage collector.
var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, copyBufferSize)
		return &buf
	},
}

// getBuffer retrieves a buffer from the pool.
func getBuffer() *[]byte {
	return bufferPool.Get().(*[]byte)
}

// putBuffer returns a buffer to the pool for reuse.
func putBuffer(buf *[]byte) {
	bufferPool.Put(buf)
}
