package cache

import (
	"hash/fnv"
	"sync"
)

const keyLockStripes = 64

// KeyLock serializes work on the same cache key. A read-through fill and an
// eviction of one key must not interleave, or an evicted value can be
// written back after the source changed.
// The zero value is ready to use.
type KeyLock struct {
	stripes [keyLockStripes]sync.Mutex
}

// Lock locks the stripe owning key and returns its unlock function.
func (l *KeyLock) Lock(key string) (unlock func()) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	m := &l.stripes[h.Sum32()%keyLockStripes]
	m.Lock()
	return m.Unlock
}
