// Package routetable builds the pairwise route table for a scene's point
// list: an N×N distance matrix (fed to the TSP solver) and an N×N Route
// table (the reconstructed polylines, used to materialize the final
// path). Computation is embarrassingly parallel across ordered pairs;
// Options gates an optional bounded worker pool over a preallocated
// result grid, so no mutex is needed on the hot path.
package routetable
