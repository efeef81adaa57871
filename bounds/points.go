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

// MinMax3 scans points for their per-axis minimum and maximum. With no
// points it returns the empty box sentinel.
func MinMax3[T Scalar](points []Vec3[T]) (minimum, maximum Vec3[T]) {
	b := EmptyBox[T]()
	for _, p := range points {
		b.AddPoint(p)
	}
	return b.Min, b.Max
}

// MinMax2 scans points for their per-axis minimum and maximum.
func MinMax2[T Scalar](points []Vec2[T]) (minimum, maximum Vec2[T]) {
	r := EmptyRectangle[T]()
	for _, p := range points {
		r.AddPoint(p)
	}
	return r.Min, r.Max
}

func SphereFromPoints[T Scalar](points []Vec3[T]) Sphere[T] {
	var s Sphere[T]
	s.CreateFromPoints(points)
	return s
}

func CircleFromPoints[T Scalar](points []Vec2[T]) Circle[T] {
	var c Circle[T]
	c.CreateFromPoints(points)
	return c
}

func BoxFromPoints[T Scalar](points []Vec3[T]) Box[T] {
	var b Box[T]
	b.CreateFromPoints(points)
	return b
}

func RectangleFromPoints[T Scalar](points []Vec2[T]) Rectangle[T] {
	var r Rectangle[T]
	r.CreateFromPoints(points)
	return r
}
