package connectivity

import "fmt"

// UnreachableVerticesError reports the vertex indices that are not
// mutually reachable with the start vertex: the start cannot reach them,
// they cannot reach the start, or both.
type UnreachableVerticesError struct {
	Indices []int
}

func (e *UnreachableVerticesError) Error() string {
	return fmt.Sprintf("connectivity: %d vertices not strongly connected to start: %v", len(e.Indices), e.Indices)
}
