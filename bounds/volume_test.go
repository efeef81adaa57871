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

func TestNew(t *testing.T) {
	for _, k := range Kinds {
		v, err := New[float32](k)
		require.NoError(t, err)
		assert.Equal(t, k, v.Kind())
	}

	b, err := New[float32](KindBox)
	require.NoError(t, err)
	assert.True(t, b.(*Box[float32]).IsEmpty())

	_, err = New[float32](Kind(7))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDispatch_NilHandles(t *testing.T) {
	var nilSphere *Sphere[float64]
	other := box(0, 0, 0, 1, 1, 1)

	_, err := Collide[float64](nilSphere, other)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Collide[float64](other, nil)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = Intersects[float64](nil, other)
	assert.ErrorIs(t, err, ErrUnknownKind)

	assert.ErrorIs(t, Merge[float64](other, nilSphere), ErrUnknownKind)
	assert.ErrorIs(t, AddPoint3[float64](nil, V3(1.0, 1, 1)), ErrUnknownKind)
	assert.Nil(t, Clone[float64](nilSphere))
	assert.Equal(t, NewBox(V3(0.0, 0, 0), V3(1.0, 1, 1)), *other, "failed merge leaves the receiver alone")
}

func TestMerge(t *testing.T) {
	for _, tc := range []struct {
		name            string
		receiver, other Volume[float64]
		want            Volume[float64]
	}{
		{"sphere+sphere", sphere(0, 0, 0, 1), sphere(10, 0, 0, 1), sphere(5, 0, 0, 6)},
		{"circle+circle", circle(0, 0, 1), circle(0, 10, 1), circle(0, 5, 6)},
		{"box+sphere", box(0, 0, 0, 1, 1, 1), sphere(5, 0, 0, 1), box(0, -1, -1, 6, 1, 1)},
		{"box+empty", box(0, 0, 0, 1, 1, 1), emptyBox(), box(0, 0, 0, 1, 1, 1)},
		{"rectangle+box", rect(0, 0, 1, 1), box(2, 2, 5, 3, 3, 6), rect(0, 0, 3, 3)},
		{"rectangle+circle", rect(0, 0, 1, 1), circle(0, 0, 2), rect(-2, -2, 2, 2)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, Merge(tc.receiver, tc.other))
			assert.Equal(t, tc.want, tc.receiver)
		})
	}
}

func TestMerge_Contains(t *testing.T) {
	others := []Volume[float64]{
		sphere(3, -2, 4, 1.5),
		circle(-6, 1, 2),
		box(1, 1, 1, 2, 3, 4),
		rect(-1, -8, 0, -7),
	}
	b := emptyBox()
	for _, o := range others {
		require.NoError(t, Merge[float64](b, o))
	}
	for _, o := range others {
		got, err := Collide[float64](b, o)
		require.NoError(t, err)
		assert.Equalf(t, Inside, got, "%v should be inside %v", o, b)
	}
}

func TestAddPoint3(t *testing.T) {
	c := circle(0, 0, 0)
	require.NoError(t, AddPoint3[float64](c, V3(0.0, 8, 100)))
	assert.Equal(t, circle(0, 4, 4), c, "circles take the projected point")

	r := rect(0, 0, 1, 1)
	require.NoError(t, AddPoint3[float64](r, V3(-1.0, 2, 100)))
	assert.Equal(t, rect(-1, 0, 1, 2), r)

	b := emptyBox()
	require.NoError(t, AddPoint3[float64](b, V3(1.0, 2, 3)))
	assert.Equal(t, box(1, 2, 3, 1, 2, 3), b)
}

func TestClone(t *testing.T) {
	s := sphere(1, 2, 3, 4)
	c := Clone[float64](s)
	require.NoError(t, AddPoint3(c, V3(100.0, 0, 0)))
	assert.Equal(t, sphere(1, 2, 3, 4), s)
	assert.NotEqual(t, s, c)
}

func TestVolume_String(t *testing.T) {
	assert.Equal(t, "sphere{center: [1 2 3], radius: 4}", sphere(1, 2, 3, 4).String())
	assert.Equal(t, "box{empty}", emptyBox().String())
	assert.Equal(t, "rectangle{min: [0 0], max: [1 1]}", rect(0, 0, 1, 1).String())
}
