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

import (
	"math"
	"reflect"
)

// Precision is the type intermediate math runs in, independent of the
// coordinate type a volume stores. Radius averaging and direction
// normalization happen here so integer volumes do not lose fractional growth.
type Precision = float64

// Epsilon guards divisions by near-zero lengths.
const Epsilon Precision = 1e-6

// EqualZero reports whether v is within Epsilon of zero.
func EqualZero(v Precision) bool { return math.Abs(v) <= Epsilon }

func isFloat[T Scalar]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// fromPrecision converts x to T, rounding to nearest for integral types.
func fromPrecision[T Scalar](x Precision) T {
	if isFloat[T]() {
		return T(x)
	}
	return T(math.Round(x))
}

// Convert converts x to T, rounding to nearest for integral types.
func Convert[T Scalar](x Precision) T { return fromPrecision[T](x) }

// roundUp converts x to the smallest T that is not less than x.
func roundUp[T Scalar](x Precision) T {
	t := T(x)
	if Precision(t) >= x {
		return t
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return T(math.Nextafter32(float32(t), float32(math.Inf(1))))
	case reflect.Float64:
		return T(math.Nextafter(float64(t), math.Inf(1)))
	}
	return T(math.Ceil(x))
}

// limits returns the lowest and highest finite values of T.
func limits[T Scalar]() (lowest, highest T) {
	var lo, hi int64
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int8:
		lo, hi = math.MinInt8, math.MaxInt8
	case reflect.Int16:
		lo, hi = math.MinInt16, math.MaxInt16
	case reflect.Int32:
		lo, hi = math.MinInt32, math.MaxInt32
	case reflect.Int:
		lo, hi = math.MinInt, math.MaxInt
	case reflect.Int64:
		lo, hi = math.MinInt64, math.MaxInt64
	case reflect.Float32:
		f := Precision(math.MaxFloat32)
		return T(-f), T(f)
	default:
		f := Precision(math.MaxFloat64)
		return T(-f), T(f)
	}
	return T(lo), T(hi)
}

// growRound moves a round volume so it also encloses a round volume of
// radius otherRadius at otherCenter. It reports whether anything changed.
// The old volume stays a subset of the result.
func growRound[V interface {
	Add(V) V
	Sub(V) V
	Mul(Precision) V
	Length() Precision
}](center V, radius Precision, otherCenter V, otherRadius Precision) (V, Precision, bool) {
	direction := otherCenter.Sub(center)
	d := direction.Length()

	if d+otherRadius <= radius {
		return center, radius, false
	}
	if d+radius <= otherRadius {
		return otherCenter, otherRadius, true
	}

	newRadius := (d + radius + otherRadius) * 0.5
	if d > Epsilon {
		center = center.Add(direction.Mul((newRadius - radius) / d))
	}
	return center, newRadius, true
}

// narrowRound3 stores a precise sphere in coordinate type T. For integral
// types the rounding drift of the center is added to the radius so the
// stored sphere still covers the precise one.
func narrowRound3[T Scalar](center Vec3[Precision], radius Precision) (Vec3[T], T) {
	c := narrow3[T](center)
	drift := Distance(c.Precise(), center)
	return c, roundUp[T](radius + drift)
}

// narrowRound2 is narrowRound3 for circles.
func narrowRound2[T Scalar](center Vec2[Precision], radius Precision) (Vec2[T], T) {
	c := narrow2[T](center)
	drift := Distance(c.Precise(), center)
	return c, roundUp[T](radius + drift)
}
