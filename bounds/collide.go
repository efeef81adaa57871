// This file is part of go-mc/server project.
// Copyright (C) 2023.  Tnze
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Pairwise classification. Every Collide* method answers from the point of
// view of the receiver: Inside means the receiver contains the argument.
// 2D volumes live in the plane z = 0 when tested against 3D volumes.
//
// Boundary conventions: round/round pairs count touching as overlap
// (d <= r1 + r2), round/box pairs do not (closest distance must be < r).

package bounds

import "math"

// classifyRound classifies a round volume of radius otherRadius at distance
// d from the center of a receiver of radius radius.
func classifyRound(d, radius, otherRadius Precision) Collision {
	if d > radius+otherRadius {
		return Outside
	}
	if d+otherRadius <= radius {
		return Inside
	}
	return Intersects
}

// planeSlice returns the radius of the circle a sphere of radius r cuts
// from the plane z = 0 when its center is at height z.
func planeSlice(z, r Precision) (Precision, bool) {
	if math.Abs(z) > r {
		return 0, false
	}
	return math.Sqrt(max(r*r-z*z, 0)), true
}

// ordered is implemented by Vec2 and Vec3.
type ordered[V any] interface {
	LessEq(V) bool
}

// boxesOverlap reports whether [lo1, hi1] and [lo2, hi2] share a point.
func boxesOverlap[V ordered[V]](lo1, hi1, lo2, hi2 V) bool {
	return lo2.LessEq(hi1) && lo1.LessEq(hi2)
}

// boxContains reports whether [lo2, hi2] lies inside [lo1, hi1].
func boxContains[V ordered[V]](lo1, hi1, lo2, hi2 V) bool {
	return lo1.LessEq(lo2) && hi2.LessEq(hi1)
}

func classifyBoxes[V ordered[V]](lo1, hi1, lo2, hi2 V) Collision {
	if !boxesOverlap(lo1, hi1, lo2, hi2) {
		return Outside
	}
	if boxContains(lo1, hi1, lo2, hi2) {
		return Inside
	}
	return Intersects
}

// spansPlane reports whether a box's z interval contains 0.
func spansPlane(lo, hi Precision) bool { return lo <= 0 && 0 <= hi }

// Sphere receiver

func (s Sphere[T]) CollideSphere(other Sphere[T]) Collision {
	d := Distance(s.Center.Precise(), other.Center.Precise())
	return classifyRound(d, Precision(s.Radius), Precision(other.Radius))
}

func (s Sphere[T]) IntersectsSphere(other Sphere[T]) bool {
	d := Distance(s.Center.Precise(), other.Center.Precise())
	return d <= Precision(s.Radius)+Precision(other.Radius)
}

// CollideCircle tests the disk of other against the slice the sphere cuts
// from the plane z = 0.
func (s Sphere[T]) CollideCircle(other Circle[T]) Collision {
	c := s.Center.Precise()
	slice, ok := planeSlice(c[2], Precision(s.Radius))
	if !ok {
		return Outside
	}
	d := Distance(c.Flatten(), other.Center.Precise())
	return classifyRound(d, slice, Precision(other.Radius))
}

func (s Sphere[T]) IntersectsCircle(other Circle[T]) bool {
	return s.CollideCircle(other) != Outside
}

// CollideBox clamps the center into the box to find the closest point.
// The box is inside when its farthest corner is within the radius.
func (s Sphere[T]) CollideBox(other Box[T]) Collision {
	if other.IsEmpty() {
		return Outside
	}
	c, r := s.Center.Precise(), Precision(s.Radius)
	lo, hi := other.precise()
	if Distance(c, c.Clamp(lo, hi)) >= r {
		return Outside
	}
	if Distance(c, c.Farthest(lo, hi)) <= r {
		return Inside
	}
	return Intersects
}

func (s Sphere[T]) IntersectsBox(other Box[T]) bool {
	if other.IsEmpty() {
		return false
	}
	c := s.Center.Precise()
	lo, hi := other.precise()
	return Distance(c, c.Clamp(lo, hi)) < Precision(s.Radius)
}

// CollideRectangle tests other as a flat box at z = 0.
func (s Sphere[T]) CollideRectangle(other Rectangle[T]) Collision {
	return s.CollideBox(other.Lift())
}

func (s Sphere[T]) IntersectsRectangle(other Rectangle[T]) bool {
	return s.IntersectsBox(other.Lift())
}

// Circle receiver

// CollideSphere tests the slice other cuts from the plane z = 0. A circle
// can only contain a sphere of zero radius lying on the plane.
func (c Circle[T]) CollideSphere(other Sphere[T]) Collision {
	oc, or := other.Center.Precise(), Precision(other.Radius)
	slice, ok := planeSlice(oc[2], or)
	if !ok {
		return Outside
	}
	d := Distance(c.Center.Precise(), oc.Flatten())
	r := Precision(c.Radius)
	if d > r+slice {
		return Outside
	}
	if EqualZero(or) && d <= r {
		return Inside
	}
	return Intersects
}

func (c Circle[T]) IntersectsSphere(other Sphere[T]) bool {
	return c.CollideSphere(other) != Outside
}

func (c Circle[T]) CollideCircle(other Circle[T]) Collision {
	d := Distance(c.Center.Precise(), other.Center.Precise())
	return classifyRound(d, Precision(c.Radius), Precision(other.Radius))
}

func (c Circle[T]) IntersectsCircle(other Circle[T]) bool {
	d := Distance(c.Center.Precise(), other.Center.Precise())
	return d <= Precision(c.Radius)+Precision(other.Radius)
}

// CollideBox requires the box to reach the plane z = 0; it can only be
// inside when it is flat on that plane.
func (c Circle[T]) CollideBox(other Box[T]) Collision {
	if other.IsEmpty() {
		return Outside
	}
	lo, hi := other.precise()
	if !spansPlane(lo[2], hi[2]) {
		return Outside
	}
	result := c.CollideRectangle(other.Flatten())
	if result == Inside && !(EqualZero(lo[2]) && EqualZero(hi[2])) {
		return Intersects
	}
	return result
}

func (c Circle[T]) IntersectsBox(other Box[T]) bool {
	return c.CollideBox(other) != Outside
}

func (c Circle[T]) CollideRectangle(other Rectangle[T]) Collision {
	if other.IsEmpty() {
		return Outside
	}
	p, r := c.Center.Precise(), Precision(c.Radius)
	lo, hi := other.Min.Precise(), other.Max.Precise()
	if Distance(p, p.Clamp(lo, hi)) >= r {
		return Outside
	}
	if Distance(p, p.Farthest(lo, hi)) <= r {
		return Inside
	}
	return Intersects
}

func (c Circle[T]) IntersectsRectangle(other Rectangle[T]) bool {
	if other.IsEmpty() {
		return false
	}
	p := c.Center.Precise()
	return Distance(p, p.Clamp(other.Min.Precise(), other.Max.Precise())) < Precision(c.Radius)
}

// Box receiver

// CollideSphere uses the closest point of the box to the sphere's center.
// The sphere is inside when center -/+ radius fits on every axis.
func (b Box[T]) CollideSphere(other Sphere[T]) Collision {
	if b.IsEmpty() {
		return Outside
	}
	lo, hi := b.precise()
	c, r := other.Center.Precise(), Precision(other.Radius)
	if Distance(c, c.Clamp(lo, hi)) >= r {
		return Outside
	}
	ext := Vec3[Precision]{r, r, r}
	if boxContains(lo, hi, c.Sub(ext), c.Add(ext)) {
		return Inside
	}
	return Intersects
}

func (b Box[T]) IntersectsSphere(other Sphere[T]) bool {
	return other.IntersectsBox(b)
}

// CollideCircle requires the box to span the plane z = 0 before testing the
// disk against the box's x/y extent.
func (b Box[T]) CollideCircle(other Circle[T]) Collision {
	if b.IsEmpty() {
		return Outside
	}
	lo, hi := b.precise()
	if !spansPlane(lo[2], hi[2]) {
		return Outside
	}
	return b.Flatten().CollideCircle(other)
}

func (b Box[T]) IntersectsCircle(other Circle[T]) bool {
	return b.CollideCircle(other) != Outside
}

func (b Box[T]) CollideBox(other Box[T]) Collision {
	if b.IsEmpty() || other.IsEmpty() {
		return Outside
	}
	lo1, hi1 := b.precise()
	lo2, hi2 := other.precise()
	return classifyBoxes(lo1, hi1, lo2, hi2)
}

func (b Box[T]) IntersectsBox(other Box[T]) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	lo1, hi1 := b.precise()
	lo2, hi2 := other.precise()
	return boxesOverlap(lo1, hi1, lo2, hi2)
}

// CollideRectangle tests other as a flat box at z = 0, so the box must span
// that plane.
func (b Box[T]) CollideRectangle(other Rectangle[T]) Collision {
	return b.CollideBox(other.Lift())
}

func (b Box[T]) IntersectsRectangle(other Rectangle[T]) bool {
	return b.IntersectsBox(other.Lift())
}

// Rectangle receiver

// CollideSphere tests the slice other cuts from the plane z = 0. A flat
// rectangle never contains a ball.
func (r Rectangle[T]) CollideSphere(other Sphere[T]) Collision {
	if r.IsEmpty() {
		return Outside
	}
	c := other.Center.Precise()
	slice, ok := planeSlice(c[2], Precision(other.Radius))
	if !ok {
		return Outside
	}
	p := c.Flatten()
	if Distance(p, p.Clamp(r.Min.Precise(), r.Max.Precise())) >= slice {
		return Outside
	}
	return Intersects
}

func (r Rectangle[T]) IntersectsSphere(other Sphere[T]) bool {
	return r.CollideSphere(other) != Outside
}

func (r Rectangle[T]) CollideCircle(other Circle[T]) Collision {
	if r.IsEmpty() {
		return Outside
	}
	lo, hi := r.Min.Precise(), r.Max.Precise()
	c, rad := other.Center.Precise(), Precision(other.Radius)
	if Distance(c, c.Clamp(lo, hi)) >= rad {
		return Outside
	}
	ext := Vec2[Precision]{rad, rad}
	if boxContains(lo, hi, c.Sub(ext), c.Add(ext)) {
		return Inside
	}
	return Intersects
}

func (r Rectangle[T]) IntersectsCircle(other Circle[T]) bool {
	return other.IntersectsRectangle(r)
}

// CollideBox lifts the receiver to a flat box at z = 0; a box can only be
// inside when it is flat on that plane too.
func (r Rectangle[T]) CollideBox(other Box[T]) Collision {
	return r.Lift().CollideBox(other)
}

func (r Rectangle[T]) IntersectsBox(other Box[T]) bool {
	return r.Lift().IntersectsBox(other)
}

func (r Rectangle[T]) CollideRectangle(other Rectangle[T]) Collision {
	if r.IsEmpty() || other.IsEmpty() {
		return Outside
	}
	return classifyBoxes(r.Min.Precise(), r.Max.Precise(), other.Min.Precise(), other.Max.Precise())
}

func (r Rectangle[T]) IntersectsRectangle(other Rectangle[T]) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return boxesOverlap(r.Min.Precise(), r.Max.Precise(), other.Min.Precise(), other.Max.Precise())
}
