// Package levelancestor implements a family of Level Ancestor (LA)
// structures over a rooted tree of N nodes addressed by integer ids in
// [0, N). Given a tree, LA(v, d) is the unique ancestor of node v at
// depth d, or a sentinel -1 when d is outside [0, depth(v)].
//
// Five interchangeable query strategies are provided behind one Query
// interface, spanning a preprocessing-vs-query-cost Pareto curve:
//
//   - Table      — quadratic ancestor table, O(1) query, O(N^2) build, capped N.
//   - JumpPointers — binary lifting, O(log N) query, O(N log N) build.
//   - Ladder     — long-path ladder decomposition, O(log N) query, O(N) build.
//   - JumpAndLadder — binary lifting that climbs via ladders, same bounds as Ladder.
//   - Optimal    — macro-micro-tree decomposition (Bender & Farach-Colton),
//     O(1) worst-case query, O(N) build.
//
// All graph relationships are parallel index arrays, never an owning
// pointer graph. Build runs once; after it succeeds the instance is
// immutable and safe for concurrent read-only Query calls.
package levelancestor
