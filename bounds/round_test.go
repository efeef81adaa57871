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
	"github.com/stretchr/testify/require"
)

func TestSphere_AddPointFromZero(t *testing.T) {
	var s Sphere[float64]
	s.AddPoint(V3(40.0, 0, 0))
	assert.Equal(t, V3(20.0, 0, 0), s.Center)
	assert.Equal(t, 20.0, s.Radius)
	assert.True(t, s.IsPointInside(V3(0.0, 0, 0)))
	assert.True(t, s.IsPointInside(V3(40.0, 0, 0)))
}

func TestSphere_AddPointInside(t *testing.T) {
	s := NewSphere(V3(1.0, 2, 3), 10)
	s.AddPoint(V3(2.0, 2, 3))
	assert.Equal(t, NewSphere(V3(1.0, 2, 3), 10), s)
}

func TestSphere_NegativeRadius(t *testing.T) {
	s := NewSphere(V3(1.0, 2, 3), -4)
	assert.Zero(t, s.Radius)
	s.SetRadius(-1)
	assert.Zero(t, s.Radius)
}

func TestSphere_AddSphere(t *testing.T) {
	for _, tc := range []struct {
		name        string
		start, with Sphere[float64]
		want        Sphere[float64]
	}{
		{
			name:  "contained",
			start: NewSphere(V3(0.0, 0, 0), 10),
			with:  NewSphere(V3(1.0, 0, 0), 2),
			want:  NewSphere(V3(0.0, 0, 0), 10),
		},
		{
			name:  "containing",
			start: NewSphere(V3(1.0, 0, 0), 2),
			with:  NewSphere(V3(0.0, 0, 0), 20),
			want:  NewSphere(V3(0.0, 0, 0), 20),
		},
		{
			name:  "disjoint",
			start: NewSphere(V3(0.0, 0, 0), 1),
			with:  NewSphere(V3(10.0, 0, 0), 1),
			want:  NewSphere(V3(5.0, 0, 0), 6),
		},
		{
			name:  "same center",
			start: NewSphere(V3(3.0, 3, 3), 1),
			with:  NewSphere(V3(3.0, 3, 3), 4),
			want:  NewSphere(V3(3.0, 3, 3), 4),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.start
			s.AddSphere(tc.with)
			assert.Equal(t, tc.want, s)
		})
	}
}

func TestSphere_AddBox(t *testing.T) {
	var s Sphere[float64]
	b := NewBox(V3(0.0, 0, 0), V3(2.0, 2, 1))
	s.AddBox(b)
	assert.Equal(t, V3(1.0, 1, 0.5), s.Center)
	assert.Equal(t, 1.5, s.Radius)
	assert.Equal(t, Inside, s.CollideBox(b))

	before := s
	s.AddBox(EmptyBox[float64]())
	assert.Equal(t, before, s, "an empty box adds nothing")
}

func TestSphere_AddCircle(t *testing.T) {
	s := NewSphere(V3(0.0, 0, 10), 1)
	s.AddCircle(NewCircle(V2(0.0, 0), 1))
	assert.Equal(t, V3(0.0, 0, 5), s.Center)
	assert.Equal(t, 6.0, s.Radius)
}

func TestSphere_CreateFromPoints(t *testing.T) {
	s := NewSphere(V3(9.0, 9, 9), 9)
	s.CreateFromPoints(nil)
	assert.Equal(t, Sphere[float64]{}, s)

	s.CreateFromPoints([]Vec3[float64]{{0, 2, 1}, {2, 0, 0}, {1, 1, 0.5}})
	assert.Equal(t, V3(1.0, 1, 0.5), s.Center)
	assert.Equal(t, 1.5, s.Radius)
	assert.Equal(t, s, SphereFromPoints([]Vec3[float64]{{0, 2, 1}, {2, 0, 0}}))
}

func TestSphere_Bounds(t *testing.T) {
	b := NewSphere(V3[int32](1, 2, 3), 2).Bounds()
	assert.Equal(t, NewBox(V3[int32](-1, 0, 1), V3[int32](3, 4, 5)), b)
}

func TestSphere_IntegerGrowthKeepsPoints(t *testing.T) {
	var s Sphere[int32]
	points := []Vec3[int32]{{3, 0, 0}, {0, 7, 0}, {-5, -5, 2}, {1, 1, 1}, {0, 0, -9}}
	for i, p := range points {
		s.AddPoint(p)
		for _, q := range points[:i+1] {
			require.Truef(t, s.IsPointInside(q), "%v lost after adding %v: %v", q, p, s)
		}
		require.True(t, s.IsPointInside(V3[int32](0, 0, 0)), "origin lost")
	}
}

func TestCircle_AddPoint(t *testing.T) {
	var c Circle[float64]
	c.AddPoint(V2(0.0, 8))
	assert.Equal(t, V2(0.0, 4), c.Center)
	assert.Equal(t, 4.0, c.Radius)

	c.AddPoint(V2(0.0, 1))
	assert.Equal(t, V2(0.0, 4), c.Center, "points inside do not move the circle")
}

func TestCircle_AddSphere(t *testing.T) {
	var c Circle[float64]
	c.AddSphere(NewSphere(V3(0.0, 0, 100), 3))
	assert.Equal(t, NewCircle(V2(0.0, 0), 3), c, "the sphere's shadow is used")
}

func TestCircle_AddRectangle(t *testing.T) {
	c := NewCircle(V2(0.0, 0), 0)
	r := NewRectangle(V2(-3.0, -4), V2(3.0, 4))
	c.AddRectangle(r)
	assert.Equal(t, NewCircle(V2(0.0, 0), 5), c)
	assert.Equal(t, Inside, c.CollideRectangle(r))

	c.AddBox(EmptyBox[float64]())
	assert.Equal(t, NewCircle(V2(0.0, 0), 5), c)
}

func TestCircle_CreateFromPoints(t *testing.T) {
	c := CircleFromPoints([]Vec2[float64]{{-3, -4}, {3, 4}, {0, 0}})
	assert.Equal(t, NewCircle(V2(0.0, 0), 5), c)

	c.CreateFromPoints(nil)
	assert.Equal(t, Circle[float64]{}, c)
}
