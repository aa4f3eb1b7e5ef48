package planner

import "fmt"

// ValidationError wraps a scene validation failure: the planning call
// never reached the route table or TSP stages.
type ValidationError struct {
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("planner: invalid scene: %v", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}
