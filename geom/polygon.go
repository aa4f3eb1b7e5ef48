package geom

// Polygon is an ordered sequence of at least three Points describing a
// closed boundary; the closing edge from the last point back to the first
// is implicit. The scene validator may enforce convexity when enabled
// (see scene.ValidateOptions); Polygon itself only enforces the minimum
// vertex-count invariant.
type Polygon struct {
	Vertices []Point
}

// NewPolygon validates and constructs a Polygon.
// Stage 1 (Validate): at least three vertices, no two coincident within
// EpsPoint (coincident vertices would collapse an edge to a point).
// Stage 2 (Finalize): copy the vertex slice so the caller cannot mutate it
// out from under the constructed value.
// Complexity: O(n²) for the pairwise distinctness check.
func NewPolygon(vertices []Point) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, ErrInvalidPolygon
	}
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if vertices[i].Equal(vertices[j]) {
				return Polygon{}, ErrInvalidPolygon
			}
		}
	}
	cp := make([]Point, len(vertices))
	copy(cp, vertices)

	return Polygon{Vertices: cp}, nil
}

// Edges returns the polygon's boundary as a sequence of Segments, including
// the implicit closing edge from the last vertex back to the first.
// Complexity: O(n).
func (p Polygon) Edges() []Segment {
	n := len(p.Vertices)
	edges := make([]Segment, n)
	for i := 0; i < n; i++ {
		edges[i] = Segment{Start: p.Vertices[i], End: p.Vertices[(i+1)%n]}
	}

	return edges
}
