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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Clamp(t *testing.T) {
	lo, hi := V3(0.0, 0.0, 0.0), V3(10.0, 10.0, 10.0)
	assert.Equal(t, V3(0.0, 5.0, 10.0), V3(-3.0, 5.0, 42.0).Clamp(lo, hi))
	assert.Equal(t, V3(1.0, 2.0, 3.0), V3(1.0, 2.0, 3.0).Clamp(lo, hi))
}

func TestVec3_Farthest(t *testing.T) {
	lo, hi := V3(0, 0, 0), V3(10, 10, 10)
	assert.Equal(t, V3(10, 10, 10), V3(1, 2, 3).Farthest(lo, hi))
	assert.Equal(t, V3(0, 10, 0), V3(9, 2, 8).Farthest(lo, hi))
}

func TestVec2_LessEq(t *testing.T) {
	assert.True(t, V2(1, 2).LessEq(V2(1, 3)))
	assert.False(t, V2(1, 4).LessEq(V2(1, 3)))
}

func TestVec3_Length(t *testing.T) {
	assert.Equal(t, 5.0, V3(3, 4, 0).Length())
	assert.Equal(t, 25.0, V3(3, 4, 0).LengthSquared())
	assert.Equal(t, 13.0, Distance(V3(1.0, 1.0, 1.0), V3(4.0, 5.0, 13.0)))
	assert.Equal(t, V3(0, 0, -6), V3(1, 0, 0).Cross(V3(0, 6, 0)).Mul(-1))
}

func TestVec_Normalize(t *testing.T) {
	assert.Equal(t, Vec3[Precision]{0, 1, 0}, V3(0, 8, 0).Normalize())
	assert.Equal(t, Vec2[Precision]{}, V2(0, 0).Normalize(), "zero vector has no direction")
	assert.InDelta(t, 1.0, V2(3.0, 4.0).Normalize().Length(), Epsilon)
}

func TestVec_LiftFlatten(t *testing.T) {
	assert.Equal(t, V3[int32](1, 2, 0), V2[int32](1, 2).Lift())
	assert.Equal(t, V2[int32](1, 2), V3[int32](1, 2, 3).Flatten())
}

func TestNarrow(t *testing.T) {
	assert.Equal(t, V3[int32](2, -2, 0), narrow3[int32](Vec3[Precision]{1.5, -1.6, 0.2}))
	assert.Equal(t, V2[float32](1.5, 0.25), narrow2[float32](Vec2[Precision]{1.5, 0.25}))
}

func TestRoundUp(t *testing.T) {
	assert.Equal(t, int32(3), roundUp[int32](2.01))
	assert.Equal(t, int64(2), roundUp[int64](2))
	f := roundUp[float32](0.1)
	assert.GreaterOrEqual(t, Precision(f), 0.1)
}

func TestLimits(t *testing.T) {
	lo, hi := limits[int8]()
	assert.Equal(t, int8(-128), lo)
	assert.Equal(t, int8(127), hi)

	flo, fhi := limits[float32]()
	assert.Less(t, flo, float32(0))
	assert.Equal(t, -flo, fhi)
}
