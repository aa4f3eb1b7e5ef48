// Package spsolver implements Dijkstra's shortest-path algorithm over a
// visibility.Graph: single-source, non-negative weights, +Inf meaning "no
// edge". It processes nodes in order of increasing tentative distance
// using a min-heap, relaxing edges and updating distances as it goes.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Implementation notes:
//
//   - Lazy decrease-key: a shorter distance to an already-queued node is
//     pushed as a new heap entry rather than updating the old one in
//     place; stale entries are discarded on pop via a visited set.
//   - Edges with weight +Inf are never relaxed.
package spsolver
