// Package tsp implements the Traveling Salesman Problem solver contract
// the planner dispatches to: an interface shared by exhaustive permutation
// enumeration and Little's-method matrix-reduction branch-and-bound, plus
// the multi-vehicle distance-matrix transform used to split one optimal
// tour into several subtours sharing a start.
//
// Both solvers accept the sentinel value -1 in an input matrix as an
// alias for +Inf, normalizing it before solving.
//
// Complexity:
//
//   - BruteForce:            O((n-1)! · n) time, O(n) space.
//   - LittleBranchAndBound:   worst case exponential, typically far better
//     in practice thanks to the reduction-value lower bound.
package tsp
