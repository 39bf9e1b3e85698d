// Package hash computes the xxHash64 fingerprints used to key sections and
// tables in caches.
package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of a section image.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Combiner folds an ordered list of section images into one fingerprint.
//
// The length of every image is mixed in before its bytes so that the same
// bytes split differently across sections give a different result.
type Combiner struct {
	d   *xxhash.Digest
	buf [2]byte
}

// NewCombiner creates an empty Combiner.
func NewCombiner() *Combiner {
	return &Combiner{d: xxhash.New()}
}

// Add mixes one section image into the fingerprint.
func (c *Combiner) Add(data []byte) {
	c.buf[0] = byte(len(data) >> 8)
	c.buf[1] = byte(len(data))
	_, _ = c.d.Write(c.buf[:])
	_, _ = c.d.Write(data)
}

// Sum64 returns the fingerprint of everything added so far.
func (c *Combiner) Sum64() uint64 {
	return c.d.Sum64()
}
