package geom

import "testing"

func TestCollide(t *testing.T) {
	size := Vec2{X: 16, Y: 16}
	cases := []struct {
		name string
		a, b Vec3
		want Collision
	}{
		{"apart", Vec3{X: 0, Y: 0}, Vec3{X: 40, Y: 0}, CollisionNone},
		{"touching_edges", Vec3{X: 0, Y: 0}, Vec3{X: 16, Y: 0}, CollisionNone},
		{"same_center", Vec3{X: 5, Y: 5}, Vec3{X: 5, Y: 5}, CollisionInside},
		{"a_left_of_b", Vec3{X: 0, Y: 0}, Vec3{X: 10, Y: 1}, CollisionLeft},
		{"a_right_of_b", Vec3{X: 10, Y: 1}, Vec3{X: 0, Y: 0}, CollisionRight},
		{"a_below_b", Vec3{X: 1, Y: 0}, Vec3{X: 0, Y: 10}, CollisionBottom},
		{"a_above_b", Vec3{X: 0, Y: 10}, Vec3{X: 1, Y: 0}, CollisionTop},
		{"depth_ignored", Vec3{X: 0, Y: 0, Z: 100}, Vec3{X: 0, Y: 0, Z: -5}, CollisionInside},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Collide(c.a, size, c.b, size); got != c.want {
				t.Fatalf("Collide = %v, want %v", got, c.want)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	if !Overlaps(Vec3{}, 8, Vec3{X: 15}, 8) {
		t.Fatalf("boxes 15 apart with half extent 8 should overlap")
	}
	if Overlaps(Vec3{}, 8, Vec3{X: 0, Y: 17}, 8) {
		t.Fatalf("boxes 17 apart with half extent 8 should not overlap")
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Fatalf("zero vector normalized to %v", got)
	}
	if got := (Vec2{X: 3, Y: 4}).Normalize().Len(); got < 0.999999 || got > 1.000001 {
		t.Fatalf("unit length expected, got %v", got)
	}
}
