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

// Sphere is a 3D round volume. The zero value is a zero-radius sphere at
// the origin.
type Sphere[T Scalar] struct {
	Center Vec3[T]
	Radius T
}

// NewSphere returns a sphere. Negative radii are clamped to zero.
func NewSphere[T Scalar](center Vec3[T], radius T) Sphere[T] {
	var s Sphere[T]
	s.Set(center, radius)
	return s
}

func (s *Sphere[T]) Kind() Kind { return KindSphere }

// Set replaces center and radius.
func (s *Sphere[T]) Set(center Vec3[T], radius T) {
	s.Center = center
	s.SetRadius(radius)
}

func (s *Sphere[T]) SetCenter(center Vec3[T]) { s.Center = center }

func (s *Sphere[T]) SetRadius(radius T) { s.Radius = max(radius, 0) }

// IsPointInside reports whether p lies inside or on the sphere.
func (s Sphere[T]) IsPointInside(p Vec3[T]) bool {
	return Distance(s.Center.Precise(), p.Precise()) <= Precision(s.Radius)
}

// AddPoint grows the sphere just enough to reach p, moving the center
// toward it. Points already inside leave the sphere untouched.
func (s *Sphere[T]) AddPoint(p Vec3[T]) {
	pp := p.Precise()
	center, radius, grown := growRound(s.Center.Precise(), Precision(s.Radius), pp, 0)
	if !grown {
		return
	}
	s.store(center, radius)
	if d := Distance(s.Center.Precise(), pp); d > Precision(s.Radius) {
		s.Radius = roundUp[T](d)
	}
}

// AddSphere grows the sphere to enclose other. When one sphere already
// contains the other the larger one wins unchanged.
func (s *Sphere[T]) AddSphere(other Sphere[T]) {
	s.addRound(other.Center.Precise(), Precision(other.Radius))
}

// AddCircle grows the sphere to enclose other, lifted to z = 0.
func (s *Sphere[T]) AddCircle(other Circle[T]) {
	s.addRound(other.Center.Lift().Precise(), Precision(other.Radius))
}

// AddBox grows the sphere to enclose the sphere circumscribing other.
func (s *Sphere[T]) AddBox(other Box[T]) {
	if other.IsEmpty() {
		return
	}
	lo, hi := other.Min.Precise(), other.Max.Precise()
	s.addRound(lo.Add(hi).Mul(0.5), Distance(lo, hi)*0.5)
}

// AddRectangle grows the sphere to enclose other, lifted to z = 0.
func (s *Sphere[T]) AddRectangle(other Rectangle[T]) {
	if other.IsEmpty() {
		return
	}
	s.AddBox(other.Lift())
}

func (s *Sphere[T]) addRound(center Vec3[Precision], radius Precision) {
	c, r, grown := growRound(s.Center.Precise(), Precision(s.Radius), center, radius)
	if grown {
		s.store(c, r)
	}
}

func (s *Sphere[T]) store(center Vec3[Precision], radius Precision) {
	s.Center, s.Radius = narrowRound3[T](center, radius)
}

// CreateFromMinMax replaces the sphere with the one circumscribing the box
// spanned by minimum and maximum.
func (s *Sphere[T]) CreateFromMinMax(minimum, maximum Vec3[T]) {
	lo, hi := minimum.Precise(), maximum.Precise()
	s.store(lo.Add(hi).Mul(0.5), Distance(lo, hi)*0.5)
}

// CreateFromPoints wraps the points' axis-aligned bounds in a sphere. The
// result encloses every point but is not the minimal sphere. An empty
// list resets the sphere to zero.
func (s *Sphere[T]) CreateFromPoints(points []Vec3[T]) {
	if len(points) == 0 {
		*s = Sphere[T]{}
		return
	}
	s.CreateFromMinMax(MinMax3(points))
}

// Bounds returns the axis-aligned box around the sphere.
func (s Sphere[T]) Bounds() Box[T] {
	r := Vec3[T]{s.Radius, s.Radius, s.Radius}
	return Box[T]{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}
