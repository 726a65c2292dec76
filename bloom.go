package cbloom

import "fmt"

// Filter is a counting bloom filter over string keys.
//
// Each of the m slots holds a counter rather than a bit, so items can be
// removed by decrementing the same k slots they incremented on insertion.
// A Filter is not safe for concurrent use; guard it with a single mutex if it
// is shared between goroutines.
type Filter struct {
	counters   []int64 // m counters, fixed for the life of the filter
	memorySize uint64  // m
	k          uint32  // Number of hash functions
	fpRate     float64 // Target false positive rate (0 if built from explicit params)
	hasher     Hasher
	policy     DeletePolicy
	idx        []uint64 // Scratch space for one key's k indices
	count      int64    // Net insertions minus deletions
}

// New creates a filter sized for numItems at the desired false positive rate,
// deriving the number of hash functions from fpRate.
func New(numItems uint64, fpRate float64, opts ...Option) (*Filter, error) {
	return NewFromParams(Params{NumItems: numItems, FPRate: fpRate}, opts...)
}

// NewWithHashFunctions is like New but uses k hash functions. A k of 0 derives
// it from fpRate.
func NewWithHashFunctions(numItems uint64, fpRate float64, k uint32, opts ...Option) (*Filter, error) {
	return NewFromParams(Params{NumItems: numItems, FPRate: fpRate, NumHashFunctions: k}, opts...)
}

// NewFromParams creates a filter from p after applying its defaulting rules.
func NewFromParams(p Params, opts ...Option) (*Filter, error) {
	s, err := p.Sizing()
	if err != nil {
		return nil, err
	}

	f, err := NewWithParams(s.MemorySize, s.K, opts...)
	if err != nil {
		return nil, err
	}
	f.fpRate = s.FPRate
	return f, nil
}

// NewWithParams creates a filter with explicit parameters.
// memorySize is the number of counters, k is the number of hash functions.
func NewWithParams(memorySize uint64, k uint32, opts ...Option) (*Filter, error) {
	if memorySize == 0 {
		return nil, ErrZeroMemory
	}
	if memorySize > MaxMemorySize {
		return nil, fmt.Errorf("%w: got %d (max %d)", ErrSizeOverflow, memorySize, MaxMemorySize)
	}
	if k == 0 {
		return nil, ErrInvalidK
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Filter{
		counters:   make([]int64, memorySize),
		memorySize: memorySize,
		k:          k,
		hasher:     cfg.family(memorySize, k),
		policy:     cfg.policy,
		idx:        make([]uint64, k),
	}, nil
}

// Indices returns the k counter indices for item, one per hash function.
func (f *Filter) Indices(item string) []uint64 {
	idx := make([]uint64, f.k)
	f.hasher.Indices(idx, item)
	return idx
}

// hash fills the scratch buffer with item's indices.
func (f *Filter) hash(item string) []uint64 {
	f.hasher.Indices(f.idx, item)
	return f.idx
}

// Search reports whether item might be in the filter. It returns false if the
// item is definitely not present.
func (f *Filter) Search(item string) bool {
	return f.searchIndices(f.hash(item))
}

func (f *Filter) searchIndices(idx []uint64) bool {
	for _, i := range idx {
		if f.counters[i] <= 0 {
			return false
		}
	}
	return true
}

// Insert adds item to the filter. A slot hit by several of the item's hash
// functions is incremented once per hit.
func (f *Filter) Insert(item string) {
	f.insertIndices(f.hash(item))
}

func (f *Filter) insertIndices(idx []uint64) {
	for _, i := range idx {
		f.counters[i]++
	}
	f.count++
}

// TestAndInsert inserts item and reports whether it appeared to be present
// beforehand.
func (f *Filter) TestAndInsert(item string) bool {
	idx := f.hash(item)
	present := f.searchIndices(idx)
	f.insertIndices(idx)
	return present
}

// Delete removes item from the filter, undoing the increments of Insert.
//
// Under DeleteStrict, deleting an item that does not appear to be present
// returns ErrNotPresent, and a delete that would drive a counter below zero
// returns ErrCounterUnderflow. Neither changes the filter.
//
// Under DeleteLenient, Delete always returns nil. Counters are only
// decremented when the item appears to be present, but the item count is
// decremented regardless.
func (f *Filter) Delete(item string) error {
	idx := f.hash(item)

	if f.policy == DeleteLenient {
		if f.searchIndices(idx) {
			f.deleteIndices(idx)
		}
		f.count--
		return nil
	}

	if !f.searchIndices(idx) {
		return ErrNotPresent
	}
	if err := f.checkUnderflow(idx); err != nil {
		return err
	}
	f.deleteIndices(idx)
	f.count--
	return nil
}

// checkUnderflow verifies each slot holds at least as many counts as the
// number of times idx names it.
func (f *Filter) checkUnderflow(idx []uint64) error {
	for j, i := range idx {
		hits := int64(1)
		for _, other := range idx[j+1:] {
			if other == i {
				hits++
			}
		}
		if f.counters[i] < hits {
			return fmt.Errorf("%w: slot %d holds %d, item needs %d", ErrCounterUnderflow, i, f.counters[i], hits)
		}
	}
	return nil
}

func (f *Filter) deleteIndices(idx []uint64) {
	for _, i := range idx {
		f.counters[i]--
	}
}

// Reset clears every counter and the item count.
func (f *Filter) Reset() {
	clear(f.counters)
	f.count = 0
}

// MemorySize returns the number of counters (m).
func (f *Filter) MemorySize() uint64 {
	return f.memorySize
}

// K returns the number of hash functions used.
func (f *Filter) K() uint32 {
	return f.k
}

// FPRate returns the target false positive rate the filter was sized for, or
// 0 if it was built with NewWithParams.
func (f *Filter) FPRate() float64 {
	return f.fpRate
}

// DeletePolicy returns the policy Delete applies.
func (f *Filter) DeletePolicy() DeletePolicy {
	return f.policy
}

// Count returns the net number of items inserted minus deleted. It is
// informational only and can be negative under DeleteLenient.
func (f *Filter) Count() int64 {
	return f.count
}

// Counter returns the value of counter i.
func (f *Filter) Counter(i uint64) (int64, error) {
	if i >= f.memorySize {
		return 0, fmt.Errorf("%w: %d (memory size %d)", ErrIndexOutOfRange, i, f.memorySize)
	}
	return f.counters[i], nil
}

// EstimatedFillRatio returns the proportion of counters that are positive.
func (f *Filter) EstimatedFillRatio() float64 {
	var set uint64
	for _, c := range f.counters {
		if c > 0 {
			set++
		}
	}
	return float64(set) / float64(f.memorySize)
}

// EstimatedFalsePositiveRate estimates the current false positive rate
// based on the net number of items in the filter.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.memorySize, f.k, uint64(max(f.count, 0)))
}
