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

// Box is a 3D axis-aligned bounding box.
//
// An empty box stores Min = highest(T) and Max = lowest(T) on every axis, so
// the first point or volume added becomes its extent. Use EmptyBox rather
// than the zero value, which is a box of size zero at the origin.
type Box[T Scalar] struct {
	Min, Max Vec3[T]
}

// EmptyBox returns a box that contains nothing.
func EmptyBox[T Scalar]() Box[T] {
	var b Box[T]
	b.SetEmpty()
	return b
}

// NewBox returns the box spanned by minimum and maximum.
func NewBox[T Scalar](minimum, maximum Vec3[T]) Box[T] {
	return Box[T]{Min: minimum, Max: maximum}
}

func (b *Box[T]) Kind() Kind { return KindBox }

func (b *Box[T]) Set(minimum, maximum Vec3[T]) {
	b.Min, b.Max = minimum, maximum
}

// SetEmpty resets the box to the empty sentinel.
func (b *Box[T]) SetEmpty() {
	lo, hi := limits[T]()
	b.Min = Vec3[T]{hi, hi, hi}
	b.Max = Vec3[T]{lo, lo, lo}
}

// IsEmpty reports whether Max < Min on any axis.
func (b Box[T]) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// Extent returns Max - Min.
func (b Box[T]) Extent() Vec3[T] { return b.Max.Sub(b.Min) }

// Diagonal returns the length of the box diagonal.
func (b Box[T]) Diagonal() Precision { return Distance(b.Min.Precise(), b.Max.Precise()) }

// Center returns the midpoint of the box, rounded for integral coordinates.
func (b Box[T]) Center() Vec3[T] {
	return narrow3[T](b.Min.Precise().Add(b.Max.Precise()).Mul(0.5))
}

// IsPointInside reports whether p lies inside or on the box.
func (b Box[T]) IsPointInside(p Vec3[T]) bool {
	return !(p[0] < b.Min[0] || p[0] > b.Max[0] ||
		p[1] < b.Min[1] || p[1] > b.Max[1] ||
		p[2] < b.Min[2] || p[2] > b.Max[2])
}

// AddPoint extends the box to include p.
func (b *Box[T]) AddPoint(p Vec3[T]) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// AddBox extends the box to the union with other.
func (b *Box[T]) AddBox(other Box[T]) {
	if other.IsEmpty() {
		return
	}
	b.AddPoint(other.Min)
	b.AddPoint(other.Max)
}

// AddRectangle extends the box to include other at z = 0.
func (b *Box[T]) AddRectangle(other Rectangle[T]) {
	if other.IsEmpty() {
		return
	}
	b.AddBox(other.Lift())
}

// AddSphere extends the box to include the corners center - radius and
// center + radius.
func (b *Box[T]) AddSphere(other Sphere[T]) {
	b.AddBox(other.Bounds())
}

// AddCircle extends the box to include the circle at z = 0.
func (b *Box[T]) AddCircle(other Circle[T]) {
	b.AddBox(other.Bounds().Lift())
}

func (b *Box[T]) CreateFromMinMax(minimum, maximum Vec3[T]) {
	b.Min, b.Max = minimum, maximum
}

// CreateFromPoints replaces the box with the bounds of points. An empty
// list leaves the box empty.
func (b *Box[T]) CreateFromPoints(points []Vec3[T]) {
	b.CreateFromMinMax(MinMax3(points))
}

// Flatten drops the z axis.
func (b Box[T]) Flatten() Rectangle[T] {
	return Rectangle[T]{Min: b.Min.Flatten(), Max: b.Max.Flatten()}
}

func (b Box[T]) precise() (lo, hi Vec3[Precision]) {
	return b.Min.Precise(), b.Max.Precise()
}
