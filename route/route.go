package route

import (
	"math"

	"github.com/avplan/tourplanner/geom"
)

// AtomKind discriminates which geometry field of an Atom is populated.
type AtomKind int

const (
	// AtomSegment marks an Atom whose Segment field is populated.
	AtomSegment AtomKind = iota
	// AtomArc marks an Atom whose Arc field is populated.
	AtomArc
)

// Atom is one leg of a Route: either a straight Segment through free space
// or an Arc along the boundary of a disk obstacle.
type Atom struct {
	Kind    AtomKind
	Segment geom.Segment
	Arc     geom.Arc
}

// NewSegmentAtom wraps s as an AtomSegment.
func NewSegmentAtom(s geom.Segment) Atom {
	return Atom{Kind: AtomSegment, Segment: s}
}

// NewArcAtom wraps a as an AtomArc.
func NewArcAtom(a geom.Arc) Atom {
	return Atom{Kind: AtomArc, Arc: a}
}

// Length returns the atom's geometric length.
func (a Atom) Length() float64 {
	if a.Kind == AtomArc {
		return a.Arc.Length()
	}

	return a.Segment.Length()
}

// Route is an ordered sequence of atoms tracing a path between two points.
// The zero value is the empty route (length 0), used for a pair's diagonal
// entry. Unreachable marks the sentinel returned when the pair has no
// finite-length path; its Length is +Inf regardless of Atoms.
type Route struct {
	Atoms       []Atom
	Unreachable bool
}

// Unreachable returns the sentinel route recorded for a pair with no
// finite-length path.
func Unreachable() Route {
	return Route{Unreachable: true}
}

// Length returns the sum of the route's atom lengths, or +Inf if the route
// is the unreachable sentinel.
func (r Route) Length() float64 {
	if r.Unreachable {
		return math.Inf(1)
	}

	var total float64
	for _, a := range r.Atoms {
		total += a.Length()
	}

	return total
}
