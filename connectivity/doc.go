// Package connectivity runs the pre-flight check the planner performs
// before launching a TSP solver: the directed graph induced by a
// distance matrix's finite entries must be strongly connected from the
// start vertex — the start must reach every vertex, and every vertex must
// reach the start.
//
// Implementation: Kosaraju's two-pass depth-first traversal, expressed as
// two explicit recursive DFS walks over an adjacency list built from the
// matrix's finite entries.
package connectivity
