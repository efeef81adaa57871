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

// Rectangle is a 2D axis-aligned bounding box. Against 3D volumes it is the
// flat region at z = 0.
type Rectangle[T Scalar] struct {
	Min, Max Vec2[T]
}

// EmptyRectangle returns a rectangle that contains nothing.
func EmptyRectangle[T Scalar]() Rectangle[T] {
	var r Rectangle[T]
	r.SetEmpty()
	return r
}

// NewRectangle returns the rectangle spanned by minimum and maximum.
func NewRectangle[T Scalar](minimum, maximum Vec2[T]) Rectangle[T] {
	return Rectangle[T]{Min: minimum, Max: maximum}
}

func (r *Rectangle[T]) Kind() Kind { return KindRectangle }

func (r *Rectangle[T]) Set(minimum, maximum Vec2[T]) {
	r.Min, r.Max = minimum, maximum
}

func (r *Rectangle[T]) SetEmpty() {
	lo, hi := limits[T]()
	r.Min = Vec2[T]{hi, hi}
	r.Max = Vec2[T]{lo, lo}
}

func (r Rectangle[T]) IsEmpty() bool {
	return r.Max[0] < r.Min[0] || r.Max[1] < r.Min[1]
}

func (r Rectangle[T]) Extent() Vec2[T] { return r.Max.Sub(r.Min) }

func (r Rectangle[T]) Diagonal() Precision { return Distance(r.Min.Precise(), r.Max.Precise()) }

func (r Rectangle[T]) Center() Vec2[T] {
	return narrow2[T](r.Min.Precise().Add(r.Max.Precise()).Mul(0.5))
}

func (r Rectangle[T]) IsPointInside(p Vec2[T]) bool {
	return !(p[0] < r.Min[0] || p[0] > r.Max[0] ||
		p[1] < r.Min[1] || p[1] > r.Max[1])
}

func (r *Rectangle[T]) AddPoint(p Vec2[T]) {
	r.Min = r.Min.Min(p)
	r.Max = r.Max.Max(p)
}

func (r *Rectangle[T]) AddRectangle(other Rectangle[T]) {
	if other.IsEmpty() {
		return
	}
	r.AddPoint(other.Min)
	r.AddPoint(other.Max)
}

// AddBox extends the rectangle by the box's x/y extent.
func (r *Rectangle[T]) AddBox(other Box[T]) {
	r.AddRectangle(other.Flatten())
}

func (r *Rectangle[T]) AddCircle(other Circle[T]) {
	r.AddRectangle(other.Bounds())
}

// AddSphere extends the rectangle by the sphere's shadow on the plane.
func (r *Rectangle[T]) AddSphere(other Sphere[T]) {
	r.AddRectangle(other.Bounds().Flatten())
}

func (r *Rectangle[T]) CreateFromMinMax(minimum, maximum Vec2[T]) {
	r.Min, r.Max = minimum, maximum
}

func (r *Rectangle[T]) CreateFromPoints(points []Vec2[T]) {
	r.CreateFromMinMax(MinMax2(points))
}

// Lift embeds the rectangle as a flat box at z = 0. Empty rectangles stay
// empty.
func (r Rectangle[T]) Lift() Box[T] {
	if r.IsEmpty() {
		return EmptyBox[T]()
	}
	return Box[T]{Min: r.Min.Lift(), Max: r.Max.Lift()}
}
