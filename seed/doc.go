// Package seed enumerates the hashed seeds a console derives at boot from its
// clock, pressed buttons, hardware timing registers and MAC address.
//
// What
//
//   - Criteria describes a seed space: a closed second-resolution time window,
//     a set of button combinations, and closed ranges for the Timer0, VCount
//     and VFrame registers, plus the console's Version and MAC address.
//   - HashedSeed is one point of that space together with its 64-bit raw seed,
//     obtained by SHA-1 hashing the 13-word boot message and byte-swapping the
//     first two digest words.
//   - HashedSeedGenerator is a lazy, finite, restartable enumerator over the
//     full cross product. It is random-access (At) so a traversal engine can
//     shard it across workers, and also exposes an iterator (All).
//
// Enumeration order
//
//	time (outer) → button combination → Timer0 → VCount → VFrame (inner)
//
// Degenerate ranges
//
//	An inverted range (high < low, ToTime < FromTime) or an empty button set
//	contributes zero values, so the space is empty rather than wrapped.
//
// Complexity
//
//   - Len: O(1). At: O(1) plus one SHA-1 block. All: O(Len).
package seed
