package domain

import "fmt"

// Point is a position in the plane, in the coordinate frame of whatever
// entity carries it.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is a closed boundary constraining where exploration is permitted.
// The closing edge from the last point back to the first is implicit.
type Polygon struct {
	// Frame is the coordinate frame the points are expressed in. Frames are
	// opaque identifiers compared by equality.
	Frame string `json:"frame"`

	// Points are the vertices in order. A valid boundary has at least three.
	Points []Point `json:"points"`
}

// Validate checks that the polygon can act as an exploration boundary.
func (p Polygon) Validate() error {
	if p.Frame == "" {
		return fmt.Errorf("%w: boundary frame is required", ErrInvalidGoal)
	}
	if len(p.Points) < 3 {
		return fmt.Errorf("%w: boundary needs at least 3 points, got %d", ErrInvalidGoal, len(p.Points))
	}
	return nil
}

// Contains reports whether pt lies inside the polygon, using even-odd ray
// casting: a ray from pt along positive x crosses an odd number of edges iff
// the point is inside. The half-open interval test (yi > y) != (yj > y) is
// the standard tie-break for points exactly on an edge or vertex; it is
// deterministic but otherwise unspecified for those inputs.
//
// The caller must ensure pt is expressed in the polygon's frame.
func (p Polygon) Contains(pt Point) bool {
	crossings := 0
	for i, j := 0, len(p.Points)-1; i < len(p.Points); j, i = i, i+1 {
		pi, pj := p.Points[i], p.Points[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) &&
			pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			crossings++
		}
	}
	return crossings%2 == 1
}
