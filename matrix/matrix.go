// Package matrix provides the dense, row-major float64 matrix used to carry
// edge weights and route-length tables throughout the planner: visibility
// graph weight matrices, the pairwise distance matrix, and TSP reduction
// matrices all share this single representation.
//
// What & Why:
//
//	A uniform two-dimensional mutable array of float64 values lets the
//	visibility, shortest-path, and TSP packages operate on the same storage
//	without interface overhead in hot loops. A thin Matrix interface sits
//	in front of a concrete Dense backing so callers depend on behavior,
//	not representation.
//
// Complexity:
//
//	Rows() and Cols() run in O(1) time.
//	At() and Set() perform bounds checking in O(1) time, returning an error on invalid indices.
//	Clone() performs a deep copy in O(rows*cols) time, allocating new storage.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on misuse.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
