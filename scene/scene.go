package scene

import "github.com/avplan/tourplanner/geom"

// Scene is the planner's complete input: a start point, the control points
// to be visited in some order, and the obstacle set every route must avoid.
type Scene struct {
	Start         geom.Point
	ControlPoints []geom.Point
	Obstacles     []Obstacle
}

// ValidateOptions gates the opt-in checks Validate performs. The core
// planner does not enforce any of these by default; they exist for callers
// (an editor, an import pipeline) that want stricter guarantees up front.
type ValidateOptions struct {
	// RequireConvexPolygons rejects any polygon obstacle that is not convex.
	RequireConvexPolygons bool

	// EnforceWindow rejects any point (start, control point, or obstacle
	// vertex/center) lying outside [MinX, MaxX] × [MinY, MaxY].
	EnforceWindow bool
	MinX, MaxX    float64
	MinY, MaxY    float64
}

// DefaultValidateOptions returns a ValidateOptions with every opt-in check
// disabled.
func DefaultValidateOptions() ValidateOptions {
	return ValidateOptions{}
}

// Validate checks s against the invariants gated by opts. It always
// requires at least one control point; polygon convexity and the
// coordinate window are opt-in.
func (s Scene) Validate(opts ValidateOptions) error {
	if len(s.ControlPoints) == 0 {
		return ErrNoControlPoints
	}

	if opts.EnforceWindow {
		if !opts.inWindow(s.Start) {
			return ErrOutOfWindow
		}
		for _, p := range s.ControlPoints {
			if !opts.inWindow(p) {
				return ErrOutOfWindow
			}
		}
	}

	for _, o := range s.Obstacles {
		if err := o.validate(opts); err != nil {
			return err
		}
	}

	return nil
}

func (opts ValidateOptions) inWindow(p geom.Point) bool {
	return p.X >= opts.MinX && p.X <= opts.MaxX && p.Y >= opts.MinY && p.Y <= opts.MaxY
}

func (o Obstacle) validate(opts ValidateOptions) error {
	switch o.Kind {
	case KindDisk:
		if o.Disk.Radius <= 0 {
			return ErrInvalidObstacle
		}
		if opts.EnforceWindow && !opts.inWindow(o.Disk.Center) {
			return ErrOutOfWindow
		}
	case KindSegment:
		if opts.EnforceWindow {
			if !opts.inWindow(o.Segment.Start) || !opts.inWindow(o.Segment.End) {
				return ErrOutOfWindow
			}
		}
	case KindPolygon:
		if len(o.Polygon.Vertices) < 3 {
			return ErrInvalidObstacle
		}
		if opts.EnforceWindow {
			for _, v := range o.Polygon.Vertices {
				if !opts.inWindow(v) {
					return ErrOutOfWindow
				}
			}
		}
		if opts.RequireConvexPolygons && !isConvex(o.Polygon) {
			return ErrNonConvexPolygon
		}
	default:
		return ErrInvalidObstacle
	}

	return nil
}

// isConvex reports whether p's vertices, taken in order, turn consistently
// in one direction (all cross products of consecutive edges share a sign,
// collinear edges ignored).
func isConvex(p geom.Polygon) bool {
	n := len(p.Vertices)
	sign := 0

	for i := 0; i < n; i++ {
		a := p.Vertices[i]
		b := p.Vertices[(i+1)%n]
		c := p.Vertices[(i+2)%n]

		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if cross == 0 {
			continue
		}

		s := 1
		if cross < 0 {
			s = -1
		}

		if sign == 0 {
			sign = s
		} else if sign != s {
			return false
		}
	}

	return true
}
