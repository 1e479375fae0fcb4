// pkg/compress/pools.go
package compress

import "sync"

// readBufferPool provides 32KB copy buffers shared by all workers
var readBufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 32*1024)
		return &buf
	},
}

// getReadBuffer returns a 32KB buffer from the pool
func getReadBuffer() []byte {
	return *readBufferPool.Get().(*[]byte)
}

// putReadBuffer returns a buffer to the pool
func putReadBuffer(buf []byte) {
	readBufferPool.Put(&buf)
}
