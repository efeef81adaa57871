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

package bounds

// Circle is a 2D round volume. In 3D tests it is the disk lying in the
// plane z = 0.
type Circle[T Scalar] struct {
	Center Vec2[T]
	Radius T
}

// NewCircle returns a circle. Negative radii are clamped to zero.
func NewCircle[T Scalar](center Vec2[T], radius T) Circle[T] {
	var c Circle[T]
	c.Set(center, radius)
	return c
}

func (c *Circle[T]) Kind() Kind { return KindCircle }

func (c *Circle[T]) Set(center Vec2[T], radius T) {
	c.Center = center
	c.SetRadius(radius)
}

func (c *Circle[T]) SetCenter(center Vec2[T]) { c.Center = center }

func (c *Circle[T]) SetRadius(radius T) { c.Radius = max(radius, 0) }

// IsPointInside reports whether p lies inside or on the circle.
func (c Circle[T]) IsPointInside(p Vec2[T]) bool {
	return Distance(c.Center.Precise(), p.Precise()) <= Precision(c.Radius)
}

// AddPoint grows the circle just enough to reach p.
func (c *Circle[T]) AddPoint(p Vec2[T]) {
	pp := p.Precise()
	center, radius, grown := growRound(c.Center.Precise(), Precision(c.Radius), pp, 0)
	if !grown {
		return
	}
	c.store(center, radius)
	if d := Distance(c.Center.Precise(), pp); d > Precision(c.Radius) {
		c.Radius = roundUp[T](d)
	}
}

// AddSphere grows the circle to enclose the sphere's shadow on the plane.
func (c *Circle[T]) AddSphere(other Sphere[T]) {
	c.addRound(other.Center.Flatten().Precise(), Precision(other.Radius))
}

func (c *Circle[T]) AddCircle(other Circle[T]) {
	c.addRound(other.Center.Precise(), Precision(other.Radius))
}

// AddBox grows the circle to enclose the box's shadow on the plane.
func (c *Circle[T]) AddBox(other Box[T]) {
	if other.IsEmpty() {
		return
	}
	c.AddRectangle(other.Flatten())
}

// AddRectangle grows the circle to enclose the circle circumscribing other.
func (c *Circle[T]) AddRectangle(other Rectangle[T]) {
	if other.IsEmpty() {
		return
	}
	lo, hi := other.Min.Precise(), other.Max.Precise()
	c.addRound(lo.Add(hi).Mul(0.5), Distance(lo, hi)*0.5)
}

func (c *Circle[T]) addRound(center Vec2[Precision], radius Precision) {
	nc, nr, grown := growRound(c.Center.Precise(), Precision(c.Radius), center, radius)
	if grown {
		c.store(nc, nr)
	}
}

func (c *Circle[T]) store(center Vec2[Precision], radius Precision) {
	c.Center, c.Radius = narrowRound2[T](center, radius)
}

// CreateFromMinMax replaces the circle with the one circumscribing the
// rectangle spanned by minimum and maximum.
func (c *Circle[T]) CreateFromMinMax(minimum, maximum Vec2[T]) {
	lo, hi := minimum.Precise(), maximum.Precise()
	c.store(lo.Add(hi).Mul(0.5), Distance(lo, hi)*0.5)
}

// CreateFromPoints wraps the points' bounds in a circle. An empty list
// resets the circle to zero.
func (c *Circle[T]) CreateFromPoints(points []Vec2[T]) {
	if len(points) == 0 {
		*c = Circle[T]{}
		return
	}
	c.CreateFromMinMax(MinMax2(points))
}

// Bounds returns the rectangle around the circle.
func (c Circle[T]) Bounds() Rectangle[T] {
	r := Vec2[T]{c.Radius, c.Radius}
	return Rectangle[T]{Min: c.Center.Sub(r), Max: c.Center.Add(r)}
}
