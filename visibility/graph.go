package visibility

import (
	"fmt"
	"math"

	"github.com/avplan/tourplanner/geom"
	"github.com/avplan/tourplanner/geompred"
	"github.com/avplan/tourplanner/matrix"
	"github.com/avplan/tourplanner/scene"
)

// Node is one vertex of a visibility graph: a point in the plane, and —
// when the point is a tangent touch on a disk — the index of that disk's
// obstacle in the scene's obstacle slice. DiskID is -1 for the start, the
// end, and any non-disk obstacle vertex.
type Node struct {
	Point  geom.Point
	DiskID int
}

// Graph is the tangent visibility graph for one start/end pair: the node
// list (start at index 0, end at index 1), a DiskID-per-node convenience
// slice mirroring Node.DiskID, and the dense weight matrix. W[i][j] is
// +Inf wherever no free-space hop exists from node i to node j.
type Graph struct {
	Nodes  []Node
	DiskOf []int
	W      *matrix.Dense
}

type diskRef struct {
	index int
	disk  geom.Disk
}

// Build constructs the tangent visibility graph between start and end
// against obstacles. The node set is collected deterministically: start
// (index 0), end (index 1), every segment obstacle's endpoints, every
// polygon obstacle's vertices, and finally — for every disk obstacle, in
// obstacle order — the tangent touch points from each of those preceding
// non-disk nodes onto that disk. A point strictly inside a disk
// contributes no tangent nodes for it.
//
// Edge weights follow two rules: two tangent touches on the same disk are
// joined by the shorter boundary arc between them, unconditionally (arcs
// are never blocked); every other pair is joined by the straight-line
// distance unless some obstacle blocks the line of sight, in which case
// the entry is left at +Inf. A segment whose endpoints both lie on the
// boundary of a particular disk is a chord of that disk and is exempt
// from that disk's clearance test: unless a segment, a polygon edge, or
// another disk blocks it, it is emitted as a straight-line edge (this is
// how a control point lying on a disk boundary connects to that disk's
// tangent touches). Two tangent touches on the same disk never get a
// chord; the arc rule above applies to them first.
//
// Build never fails because a pair is unreachable — unreached entries
// simply stay at +Inf; the returned error is reserved for internal
// bookkeeping failures.
func Build(start, end geom.Point, obstacles []scene.Obstacle) (*Graph, error) {
	nodes := []Node{{Point: start, DiskID: -1}, {Point: end, DiskID: -1}}

	for _, o := range obstacles {
		if o.Kind == scene.KindSegment {
			nodes = append(nodes,
				Node{Point: o.Segment.Start, DiskID: -1},
				Node{Point: o.Segment.End, DiskID: -1},
			)
		}
	}
	for _, o := range obstacles {
		if o.Kind == scene.KindPolygon {
			for _, v := range o.Polygon.Vertices {
				nodes = append(nodes, Node{Point: v, DiskID: -1})
			}
		}
	}

	// Snapshot the non-disk nodes before appending any tangent touches:
	// tangents are constructed from this fixed set, never from each other.
	nonDiskNodes := make([]Node, len(nodes))
	copy(nonDiskNodes, nodes)

	var disks []diskRef
	var segments []geom.Segment
	var polygonEdges []geom.Segment
	for idx, o := range obstacles {
		switch o.Kind {
		case scene.KindDisk:
			disks = append(disks, diskRef{index: idx, disk: o.Disk})
		case scene.KindSegment:
			segments = append(segments, o.Segment)
		case scene.KindPolygon:
			polygonEdges = append(polygonEdges, o.Polygon.Edges()...)
		}
	}

	for _, dr := range disks {
		for _, n := range nonDiskNodes {
			t1, t2, count, err := geompred.TangentPoints(n.Point, dr.disk)
			if err != nil {
				return nil, fmt.Errorf("visibility: tangent construction: %w", err)
			}
			switch count {
			case 1:
				nodes = append(nodes, Node{Point: t1, DiskID: dr.index})
			case 2:
				nodes = append(nodes,
					Node{Point: t1, DiskID: dr.index},
					Node{Point: t2, DiskID: dr.index},
				)
			}
		}
	}

	n := len(nodes)
	w, err := matrix.NewDenseFilled(n, n, math.Inf(1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMatrixBuild, err)
	}

	diskOf := make([]int, n)
	for i, nd := range nodes {
		diskOf[i] = nd.DiskID
	}

	for i := 0; i < n; i++ {
		if err := w.Set(i, i, 0); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMatrixBuild, err)
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}

			weight, ok := edgeWeight(nodes[i], nodes[j], disks, segments, polygonEdges)
			if !ok {
				continue
			}
			if err := w.Set(i, j, weight); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMatrixBuild, err)
			}
		}
	}

	return &Graph{Nodes: nodes, DiskOf: diskOf, W: w}, nil
}

// edgeWeight computes the weight of the directed hop a→b, reporting ok =
// false when no free-space edge exists.
func edgeWeight(a, b Node, disks []diskRef, segments, polygonEdges []geom.Segment) (float64, bool) {
	if a.DiskID >= 0 && a.DiskID == b.DiskID {
		d := diskByIndex(disks, a.DiskID)

		return geompred.ShorterArcLength(d.Center, d.Radius, a.Point, b.Point), true
	}

	candidate := geom.NewSegment(a.Point, b.Point)

	for _, s := range segments {
		if geompred.SegmentIntersectsSegment(candidate, s) {
			return 0, false
		}
	}
	for _, e := range polygonEdges {
		if geompred.SegmentIntersectsSegment(candidate, e) {
			return 0, false
		}
	}
	for _, dr := range disks {
		if dr.disk.OnBoundary(a.Point) && dr.disk.OnBoundary(b.Point) {
			// Chord of this disk: exempt from its clearance test.
			continue
		}
		if !geompred.SegmentClearsDisk(candidate, dr.disk) {
			return 0, false
		}
	}

	return geom.Distance(a.Point, b.Point), true
}

func diskByIndex(disks []diskRef, index int) geom.Disk {
	for _, dr := range disks {
		if dr.index == index {
			return dr.disk
		}
	}

	return geom.Disk{}
}
