// Package planner is the obstacle-avoiding tour planner's single entry
// point: Plan wires every other package together into one synchronous,
// in-memory computation.
//
// Under the hood, everything is organized under focused subpackages:
//
//	geom/          — Point, Segment, Disk, Polygon, Arc; distances, validation
//	geompred/      — segment intersection, disk tangents, clearance, arc length
//	matrix/        — dense float64 matrix shared by every weight/distance table
//	visibility/    — tangent visibility graph builder for one start/end pair
//	spsolver/      — Dijkstra shortest-path solver over a visibility graph
//	routetable/    — pairwise N×N distance matrix and Route table
//	connectivity/  — Kosaraju strong-connectivity pre-flight check
//	tsp/           — TSP solver contract, brute-force and branch-and-bound
//	scene/         — Scene and Obstacle, the planner's input types
//	route/         — Route, the planner's output polyline type
//
// Quick start:
//
//	s := scene.Scene{
//	    Start:         geom.NewPoint(0, 0),
//	    ControlPoints: []geom.Point{geom.NewPoint(10, 0), geom.NewPoint(10, 10)},
//	    Obstacles: []scene.Obstacle{
//	        scene.NewDiskObstacle(geom.Disk{Center: geom.NewPoint(5, 5), Radius: 2}),
//	    },
//	}
//	result, err := planner.Plan(s, planner.LittleBranchAndBound)
//
// Plan is an atomic, single-threaded, CPU-bound computation: it blocks
// until a tour and route are ready or an error is returned. It performs
// no I/O and holds no state between calls.
package planner
