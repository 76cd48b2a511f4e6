// Package unionfind provides a fixed-capacity disjoint-set forest
// (weighted quick-union) over the integers [0, n).
//
// What:
//
//   - Forest partitions n elements into disjoint sets.
//   - Union merges two sets, attaching the root of the smaller tree under the
//     root of the larger one (union by size).
//   - Find walks to the root with path halving; Connected compares roots.
//
// Why:
//
//   - Dynamic connectivity: answer "are p and q connected?" while edges are
//     only ever added, never removed (percolation, Kruskal, clustering).
//
// Complexity:
//
//   - New:             O(n) time, O(n) memory.
//   - Find, Connected: O(log n) worst case, near O(1) amortized.
//   - Union:           same as Find.
//
// Errors:
//
//   - ErrInvalidArgument: capacity n <= 0.
//   - ErrIndexOutOfRange: element outside [0, n).
//
// A Forest is not safe for concurrent use; callers serialize access.
package unionfind
