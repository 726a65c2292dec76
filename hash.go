package cbloom

import (
	"github.com/holiman/uint256"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Hasher derives the counter indices for a key.
type Hasher interface {
	// Indices writes one index in [0, m) per hash function into dst.
	// len(dst) is the filter's k.
	Indices(dst []uint64, item string)
}

// HashFamily builds a Hasher for a filter with memorySize counters and k hash
// functions.
type HashFamily func(memorySize uint64, k uint32) Hasher

// Polynomial is the default hash family. Hash function i folds the code points
// of the key with radix d = 2^(i+1):
//
//	acc = (acc + (c * d^p)^2) mod m
//
// for each code point c at position p. The empty string maps to 0 under every
// function.
//
// All intermediate values are reduced modulo m with 256-bit arithmetic, which
// gives the same index as evaluating the fold over unbounded integers.
func Polynomial(memorySize uint64, k uint32) Hasher {
	h := &polynomialHasher{radices: make([]uint256.Int, k)}
	h.mod.SetUint64(memorySize)
	h.one.SetOne()
	h.one.Mod(&h.one, &h.mod)

	// radices[i] = 2^(i+1) mod m, by repeated doubling so any k is representable.
	d := h.one
	for i := range h.radices {
		d.AddMod(&d, &d, &h.mod)
		h.radices[i] = d
	}
	return h
}

type polynomialHasher struct {
	mod     uint256.Int
	one     uint256.Int   // 1 mod m
	radices []uint256.Int // 2^(i+1) mod m
}

func (h *polynomialHasher) Indices(dst []uint64, item string) {
	for i := range dst {
		dst[i] = h.fold(item, &h.radices[i])
	}
}

// fold evaluates one hash function. pow tracks d^p mod m.
func (h *polynomialHasher) fold(item string, radix *uint256.Int) uint64 {
	var acc, term uint256.Int
	pow := h.one
	for _, c := range item {
		term.SetUint64(uint64(c))
		term.MulMod(&term, &pow, &h.mod)
		term.MulMod(&term, &term, &h.mod)
		acc.AddMod(&acc, &term, &h.mod)
		pow.MulMod(&pow, radix, &h.mod)
	}
	return acc.Uint64()
}

// XXH3 derives k indices from a single 128-bit xxh3 hash using double hashing
// (h1 + i*h2) mod m. It is much faster than Polynomial but does not reproduce
// its indices.
func XXH3(memorySize uint64, k uint32) Hasher {
	return doubleHasher{m: memorySize, sum: xxh3Sum}
}

// Murmur3 is like XXH3 but takes h1 and h2 from murmur3's 128-bit sum.
func Murmur3(memorySize uint64, k uint32) Hasher {
	return doubleHasher{m: memorySize, sum: murmur3Sum}
}

func xxh3Sum(s string) (h1, h2 uint64) {
	h := xxh3.HashString128(s)
	return h.Lo, h.Hi
}

func murmur3Sum(s string) (h1, h2 uint64) {
	return murmur3.Sum128([]byte(s))
}

// doubleHasher implements the "Less Hashing, Same Performance" construction.
type doubleHasher struct {
	m   uint64
	sum func(string) (uint64, uint64)
}

func (h doubleHasher) Indices(dst []uint64, item string) {
	h1, h2 := h.sum(item)
	// An odd step keeps successive probes from collapsing when m is a power of 2.
	h2 |= 1
	for i := range dst {
		dst[i] = (h1 + uint64(i)*h2) % h.m
	}
}
