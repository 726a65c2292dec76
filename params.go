package cbloom

import (
	"fmt"
	"math"
)

const (
	// DefaultFPRate replaces any non-positive false positive rate.
	DefaultFPRate = 0.02

	// MaxMemorySize is the largest counter array a Filter will allocate.
	MaxMemorySize = uint64(1) << 40

	// bitsPerItemFactor approximates 1/ln(2), the per-item scale of -log2(p)
	// in the optimal bloom filter size.
	bitsPerItemFactor = 1.44
)

// Params describes a filter in terms of its expected load.
//
// Defaulting rules, applied by Sizing:
//   - FPRate <= 0 is replaced by DefaultFPRate.
//   - NumHashFunctions == 0 is derived from FPRate; any other value is used verbatim.
type Params struct {
	NumItems         uint64
	FPRate           float64
	NumHashFunctions uint32
}

// Sizing is the concrete shape of a filter after Params are resolved.
type Sizing struct {
	MemorySize uint64  // Number of counters (m)
	K          uint32  // Number of hash functions
	FPRate     float64 // Target false positive rate after defaulting
}

// Sizing validates p, applies the defaulting rules and computes the memory size
// and number of hash functions.
func (p Params) Sizing() (Sizing, error) {
	if p.NumItems == 0 {
		return Sizing{}, ErrInvalidNumItems
	}

	fpRate := p.FPRate
	if math.IsNaN(fpRate) || fpRate > 1 {
		return Sizing{}, fmt.Errorf("%w: got %v", ErrInvalidFPRate, fpRate)
	}
	if fpRate <= 0 {
		fpRate = DefaultFPRate
	}

	memorySize, err := MemorySize(p.NumItems, fpRate)
	if err != nil {
		return Sizing{}, err
	}

	k := p.NumHashFunctions
	if k == 0 {
		k = OptimalK(fpRate)
	}

	return Sizing{MemorySize: memorySize, K: k, FPRate: fpRate}, nil
}

// MemorySize returns trunc(numItems * -1.44 * log2(fpRate)), the number of
// counters needed to hold numItems at the given false positive rate.
// fpRate must already be in (0, 1].
func MemorySize(numItems uint64, fpRate float64) (uint64, error) {
	total := float64(numItems) * (-bitsPerItemFactor * math.Log2(fpRate))

	if total >= float64(MaxMemorySize)+1 {
		return 0, fmt.Errorf("%w: %d items at fp rate %v needs %.0f counters (max %d)",
			ErrSizeOverflow, numItems, fpRate, total, MaxMemorySize)
	}

	m := uint64(total)
	if m == 0 {
		return 0, fmt.Errorf("%w: %d items at fp rate %v", ErrZeroMemory, numItems, fpRate)
	}
	return m, nil
}

// OptimalK returns round(-log2(fpRate)), never less than 1. Halves round to even.
func OptimalK(fpRate float64) uint32 {
	k := math.RoundToEven(-math.Log2(fpRate))
	if k < 1 {
		return 1
	}
	return uint32(k)
}

// OptimalParams calculates the counter array size and number of hash functions
// for the expected number of items and desired false positive rate.
func OptimalParams(numItems uint64, fpRate float64) (memorySize uint64, k uint32, err error) {
	s, err := Params{NumItems: numItems, FPRate: fpRate}.Sizing()
	if err != nil {
		return 0, 0, err
	}
	return s.MemorySize, s.K, nil
}

// EstimateFalsePositiveRate estimates the false positive rate for given parameters.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(memorySize uint64, k uint32, itemsAdded uint64) float64 {
	m := float64(memorySize)
	n := float64(itemsAdded)
	kf := float64(k)

	if m == 0 || n == 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-kf*n/m), kf)
}
