package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Facing is the horizontal direction an actor looks at
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Dir returns +1 for right and -1 for left
func (f Facing) Dir() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Opposite returns the reversed facing
func (f Facing) Opposite() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

// String returns the string representation of the facing
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// FacingToward returns the facing that looks from x toward targetX.
// Equal positions keep the current facing.
func FacingToward(current Facing, x, targetX float64) Facing {
	switch {
	case targetX > x:
		return FacingRight
	case targetX < x:
		return FacingLeft
	default:
		return current
	}
}

// Rect is an axis-aligned rectangle in world coordinates
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether two rects share a non-empty area.
// Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Intersection returns the overlapping area (zero size when disjoint)
func (r Rect) Intersection(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether o lies fully inside r
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// World describes the playfield: its size and the ground line
type World struct {
	Width   float64
	Height  float64
	GroundY float64
}

// Bounds returns the world as a rect anchored at the origin
func (w World) Bounds() Rect {
	return Rect{W: w.Width, H: w.Height}
}
