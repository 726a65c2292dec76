// Package cbloom provides a counting bloom filter for string keys.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. A counting bloom filter keeps a counter per slot
// instead of a single bit, which makes deletion possible: Delete decrements
// the same slots Insert incremented.
//
// # Sizing
//
// Use [New] with your expected number of items and desired false positive rate:
//
//	// Filter for 1000 items with 2% false positive rate
//	f, err := cbloom.New(1000, 0.02)
//
// For n items at false positive rate p the filter allocates
//
//	m = trunc(n * -1.44 * log2(p))
//
// counters and uses k = round(-log2(p)) hash functions (at least 1). A rate of
// zero or less is replaced by [DefaultFPRate]. [NewWithHashFunctions] fixes k
// explicitly and [NewWithParams] takes m and k directly. Invalid parameters are
// reported as errors; see [ErrInvalidNumItems], [ErrInvalidFPRate] and
// [ErrZeroMemory].
//
// Counters are 64-bit, so memory usage is 8*m bytes.
//
// # Hashing
//
// The default [Polynomial] hash family derives hash function i from a
// polynomial fold over the key's code points with radix 2^(i+1). It is fully
// deterministic and reproducible, but not cryptographic and not especially
// uniform. [XXH3] and [Murmur3] are faster alternatives based on double
// hashing; select them with [WithHashFamily].
//
// # Deletion
//
// Deleting an item that was never inserted can corrupt a counting bloom filter
// by removing counts that belong to other items. By default ([DeleteStrict])
// Delete refuses to delete an item that does not appear to be present, or
// whose removal would drive a counter below zero, and reports why. Under
// [DeleteLenient] such deletes are ignored silently, but the item count is
// still decremented.
//
// # Thread Safety
//
// [Filter] is NOT thread-safe. Use external synchronization if a filter is
// shared between goroutines.
//
// # References
//
//   - Fan et al., Summary Cache: https://pages.cs.wisc.edu/~jussara/papers/00ton.pdf
//   - Less Hashing, Same Performance: https://www.eecs.harvard.edu/~michaelm/postscripts/rsa2008.pdf
package cbloom
