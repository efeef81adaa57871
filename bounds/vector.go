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

// Package bounds implements bounding volumes (spheres, circles, boxes and
// rectangles) with overlap classification, incremental growth and
// construction from point clouds.
//
// Vectors are plain arrays so they compare with == and copy by value.
// Lengths and directions are always computed in Precision, whatever the
// coordinate type of the vector is.
package bounds

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is any coordinate type a volume may be stored in.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Vec2 is a 2D point or vector.
type Vec2[T Scalar] [2]T

// V2 builds a Vec2.
func V2[T Scalar](x, y T) Vec2[T] { return Vec2[T]{x, y} }

func (v Vec2[T]) X() T { return v[0] }
func (v Vec2[T]) Y() T { return v[1] }

// Add returns v + other.
func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + other[0], v[1] + other[1]} }

// Sub returns v - other.
func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - other[0], v[1] - other[1]} }

// Mul scales v by s.
func (v Vec2[T]) Mul(s T) Vec2[T] { return Vec2[T]{v[0] * s, v[1] * s} }

// Div divides every component by s.
func (v Vec2[T]) Div(s T) Vec2[T] { return Vec2[T]{v[0] / s, v[1] / s} }

// AddScalar adds s to every component.
func (v Vec2[T]) AddScalar(s T) Vec2[T] { return Vec2[T]{v[0] + s, v[1] + s} }

// Max returns the component-wise maximum.
func (v Vec2[T]) Max(other Vec2[T]) Vec2[T] { return Vec2[T]{max(v[0], other[0]), max(v[1], other[1])} }

// Min returns the component-wise minimum.
func (v Vec2[T]) Min(other Vec2[T]) Vec2[T] { return Vec2[T]{min(v[0], other[0]), min(v[1], other[1])} }

// Clamp clamps every component of v into [lo, hi].
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] { return lo.Max(v.Min(hi)) }

// LessEq reports whether every component of v is <= the one in other.
func (v Vec2[T]) LessEq(other Vec2[T]) bool { return v[0] <= other[0] && v[1] <= other[1] }

// Farthest returns the corner of the box [lo, hi] farthest from v.
func (v Vec2[T]) Farthest(lo, hi Vec2[T]) Vec2[T] {
	return Vec2[T]{farther(v[0], lo[0], hi[0]), farther(v[1], lo[1], hi[1])}
}

// Dot returns the dot product.
func (v Vec2[T]) Dot(other Vec2[T]) Precision {
	a, b := v.Precise(), other.Precise()
	return a[0]*b[0] + a[1]*b[1]
}

// LengthSquared returns the squared length.
func (v Vec2[T]) LengthSquared() Precision { return v.Dot(v) }

// Length returns the euclidean length.
func (v Vec2[T]) Length() Precision { return math.Sqrt(v.LengthSquared()) }

// Normalize returns the unit vector pointing along v, or the zero vector
// when v is too short to have a direction.
func (v Vec2[T]) Normalize() Vec2[Precision] {
	l := v.Length()
	if l <= Epsilon {
		return Vec2[Precision]{}
	}
	return v.Precise().Mul(1 / l)
}

// Lift embeds v into 3D space at z = 0.
func (v Vec2[T]) Lift() Vec3[T] { return Vec3[T]{v[0], v[1], 0} }

// Precise converts v into the precision type.
func (v Vec2[T]) Precise() Vec2[Precision] { return Vec2[Precision]{Precision(v[0]), Precision(v[1])} }

// Vec3 is a 3D point or vector.
type Vec3[T Scalar] [3]T

// V3 builds a Vec3.
func V3[T Scalar](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

// Add returns v + other.
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// Sub returns v - other.
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v[0] - other[0], v[1] - other[1], v[2] - other[2]}
}

// Mul scales v by s.
func (v Vec3[T]) Mul(s T) Vec3[T] { return Vec3[T]{v[0] * s, v[1] * s, v[2] * s} }

// Div divides every component by s.
func (v Vec3[T]) Div(s T) Vec3[T] { return Vec3[T]{v[0] / s, v[1] / s, v[2] / s} }

// AddScalar adds s to every component.
func (v Vec3[T]) AddScalar(s T) Vec3[T] { return Vec3[T]{v[0] + s, v[1] + s, v[2] + s} }

// Max returns the component-wise maximum.
func (v Vec3[T]) Max(other Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v[0], other[0]), max(v[1], other[1]), max(v[2], other[2])}
}

// Min returns the component-wise minimum.
func (v Vec3[T]) Min(other Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v[0], other[0]), min(v[1], other[1]), min(v[2], other[2])}
}

// Clamp clamps every component of v into [lo, hi].
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] { return lo.Max(v.Min(hi)) }

// LessEq reports whether every component of v is <= the one in other.
func (v Vec3[T]) LessEq(other Vec3[T]) bool {
	return v[0] <= other[0] && v[1] <= other[1] && v[2] <= other[2]
}

// Farthest returns the corner of the box [lo, hi] farthest from v.
func (v Vec3[T]) Farthest(lo, hi Vec3[T]) Vec3[T] {
	return Vec3[T]{farther(v[0], lo[0], hi[0]), farther(v[1], lo[1], hi[1]), farther(v[2], lo[2], hi[2])}
}

// Dot returns the dot product.
func (v Vec3[T]) Dot(other Vec3[T]) Precision {
	a, b := v.Precise(), other.Precise()
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the cross product v × other.
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}

// LengthSquared returns the squared length.
func (v Vec3[T]) LengthSquared() Precision { return v.Dot(v) }

// Length returns the euclidean length.
func (v Vec3[T]) Length() Precision { return math.Sqrt(v.LengthSquared()) }

// Normalize returns the unit vector pointing along v, or the zero vector
// when v is too short to have a direction.
func (v Vec3[T]) Normalize() Vec3[Precision] {
	l := v.Length()
	if l <= Epsilon {
		return Vec3[Precision]{}
	}
	return v.Precise().Mul(1 / l)
}

// Flatten drops the z component.
func (v Vec3[T]) Flatten() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// Precise converts v into the precision type.
func (v Vec3[T]) Precise() Vec3[Precision] {
	return Vec3[Precision]{Precision(v[0]), Precision(v[1]), Precision(v[2])}
}

// Distance returns the euclidean distance between two points.
func Distance[V interface {
	Sub(V) V
	Length() Precision
}](a, b V) Precision {
	return a.Sub(b).Length()
}

func farther[T Scalar](p, lo, hi T) T {
	if p-lo > hi-p {
		return lo
	}
	return hi
}

// narrow2 converts a precise vector back to coordinate type T.
func narrow2[T Scalar](v Vec2[Precision]) Vec2[T] {
	return Vec2[T]{fromPrecision[T](v[0]), fromPrecision[T](v[1])}
}

// narrow3 converts a precise vector back to coordinate type T.
func narrow3[T Scalar](v Vec3[Precision]) Vec3[T] {
	return Vec3[T]{fromPrecision[T](v[0]), fromPrecision[T](v[1]), fromPrecision[T](v[2])}
}
