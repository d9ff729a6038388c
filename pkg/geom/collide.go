// pkg/geom/collide.go
package geom

import "math"

// Collision describes which side of b the box a touched.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
	CollisionInside
)

func (c Collision) String() string {
	switch c {
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	case CollisionInside:
		return "inside"
	}
	return "none"
}

// Collide tests two axis-aligned boxes given by their centers and full sizes.
// Touching edges do not count as an overlap. The returned side is taken from
// the axis with the shallower penetration.
func Collide(aPos Vec3, aSize Vec2, bPos Vec3, bSize Vec2) Collision {
	aMin := aPos.XY().Sub(aSize.Scale(0.5))
	aMax := aPos.XY().Add(aSize.Scale(0.5))
	bMin := bPos.XY().Sub(bSize.Scale(0.5))
	bMax := bPos.XY().Add(bSize.Scale(0.5))

	if !(aMin.X < bMax.X && aMax.X > bMin.X && aMin.Y < bMax.Y && aMax.Y > bMin.Y) {
		return CollisionNone
	}

	xSide, xDepth := CollisionInside, math.Inf(-1)
	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xSide, xDepth = CollisionLeft, bMin.X-aMax.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xSide, xDepth = CollisionRight, aMin.X-bMax.X
	}

	ySide, yDepth := CollisionInside, math.Inf(-1)
	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		ySide, yDepth = CollisionBottom, bMin.Y-aMax.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		ySide, yDepth = CollisionTop, aMin.Y-bMax.Y
	}

	if math.Abs(yDepth) < math.Abs(xDepth) {
		return ySide
	}
	return xSide
}

// Overlaps reports whether two square boxes with the given half extents overlap.
func Overlaps(a Vec3, aHalf float64, b Vec3, bHalf float64) bool {
	return Collide(a, Vec2{X: aHalf * 2, Y: aHalf * 2}, b, Vec2{X: bHalf * 2, Y: bHalf * 2}) != CollisionNone
}
