// Package hashutil provides the hashing primitives shared by expression and
// LQP node hashing: a murmur3-backed byte hash and a combinator for folding
// a child's hash into a parent's.
package hashutil

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// Bytes hashes an arbitrary byte slice down to 64 bits.
func Bytes(b []byte) uint64 {
	return murmur3.Sum64(b)
}

// String hashes a string the same way Bytes does, converting it to a byte
// slice first.
func String(s string) uint64 {
	return murmur3.Sum64([]byte(s))
}

// Combine folds r into l, producing a new 64-bit hash that depends on the
// order of combination — used to build a parent expression's or node's hash
// from its children's hashes plus its own tag.
func Combine(l, r uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], l)
	binary.LittleEndian.PutUint64(buf[8:16], r)
	return murmur3.Sum64(buf[:])
}

// CombineAll folds a tag and a sequence of child hashes into one hash, in
// order.
func CombineAll(tag uint64, children ...uint64) uint64 {
	h := tag
	for _, c := range children {
		h = Combine(h, c)
	}
	return h
}
