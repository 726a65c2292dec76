package cbloom

import "errors"

var (
	// ErrInvalidNumItems is returned when the expected number of items is zero.
	ErrInvalidNumItems = errors.New("cbloom: expected number of items must be positive")

	// ErrInvalidFPRate is returned when the false positive rate is NaN or greater than 1.
	ErrInvalidFPRate = errors.New("cbloom: false positive rate must be in (0, 1]")

	// ErrZeroMemory is returned when the parameters size the counter array to zero slots.
	ErrZeroMemory = errors.New("cbloom: computed memory size is zero")

	// ErrSizeOverflow is returned when the computed memory size exceeds MaxMemorySize.
	ErrSizeOverflow = errors.New("cbloom: memory size too large")

	// ErrInvalidK is returned when an explicit number of hash functions is zero.
	ErrInvalidK = errors.New("cbloom: number of hash functions must be positive")

	// ErrNotPresent is returned by Delete when the item does not appear to be a member.
	ErrNotPresent = errors.New("cbloom: item not present")

	// ErrCounterUnderflow is returned by Delete when removing the item would drive
	// a counter below zero.
	ErrCounterUnderflow = errors.New("cbloom: counter underflow")

	// ErrIndexOutOfRange is returned when a counter index is not in [0, MemorySize()).
	ErrIndexOutOfRange = errors.New("cbloom: counter index out of range")
)
