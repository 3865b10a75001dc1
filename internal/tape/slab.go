package tape

import "sync"

// slab is one fixed chunk of arena memory. Its backing array never moves, so
// buffers carved from it keep their address for the life of the context.
type slab struct {
	data []byte
	used int // bump pointer
}

func (s *slab) fits(size, align int) bool {
	return alignUp(s.used, align)+size <= len(s.data)
}

// carve reserves size bytes at the next aligned offset.
func (s *slab) carve(size, align int) []byte {
	off := alignUp(s.used, align)
	s.used = off + size
	return s.data[off : off+size : off+size]
}

// alignUp rounds n up to a multiple of align, which must be a power of two.
func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// slabPool recycles slab memory between contexts. Only slabs of at least
// the requested size are reused.
var slabPool = sync.Pool{}

func getSlab(size int) *slab {
	if v, ok := slabPool.Get().(*[]byte); ok && cap(*v) >= size {
		return &slab{data: (*v)[:size]}
	}
	return &slab{data: make([]byte, size)}
}

func putSlab(s *slab, poison bool) {
	if poison {
		clear(s.data)
	}
	data := s.data[:cap(s.data)]
	slabPool.Put(&data)
}
