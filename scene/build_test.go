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

package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FlowyBounds/bounds"
)

func yard[T bounds.Scalar](t testing.TB) []Named[T] {
	t.Helper()
	doc, err := Decode(strings.NewReader(tomlScene), TOML)
	require.NoError(t, err)
	volumes, err := Build[T](doc)
	require.NoError(t, err)
	return volumes
}

func TestBuild(t *testing.T) {
	volumes := yard[float64](t)
	require.Len(t, volumes, 4)

	assert.Equal(t, houseID, volumes[0].ID)
	assert.Equal(t, "house", volumes[0].Label())

	house := volumes[0].Volume.(*bounds.Box[float64])
	assert.Equal(t, bounds.NewBox(bounds.V3(0.0, 0, 0), bounds.V3(10.0, 10, 10)), *house)

	ball := volumes[1].Volume.(*bounds.Sphere[float64])
	assert.Equal(t, bounds.NewSphere(bounds.V3(5.0, 5, 5), 1), *ball)

	pond := volumes[2].Volume.(*bounds.Circle[float64])
	assert.Equal(t, bounds.NewCircle(bounds.V2(30.0, 0), 4), *pond)

	path := volumes[3].Volume.(*bounds.Rectangle[float64])
	assert.Equal(t, bounds.NewRectangle(bounds.V2(-2.0, -1), bounds.V2(12.0, 1)), *path)
}

func TestBuild_Integers(t *testing.T) {
	e := Entry{Kind: "sphere", Center: []float64{1.4, 2.6, -0.7}, Radius: 2.5}
	v, err := BuildEntry[int32](e)
	require.NoError(t, err)
	assert.Equal(t, bounds.NewSphere(bounds.V3[int32](1, 3, -1), 3), *v.(*bounds.Sphere[int32]))

	e = Entry{Kind: "box", Points: [][]float64{{0, 0, 0}, {2.2, -3.8, 1}}}
	v64, err := BuildEntry[int64](e)
	require.NoError(t, err)
	assert.Equal(t, bounds.NewBox(bounds.V3[int64](0, -4, 0), bounds.V3[int64](2, 0, 1)), *v64.(*bounds.Box[int64]))
}

func TestBuildEntry_Invalid(t *testing.T) {
	_, err := BuildEntry[float32](Entry{Kind: "circle", Center: []float64{1, 2, 3}})
	assert.ErrorIs(t, err, ErrBadCoordinates)

	_, err = BuildEntry[float32](Entry{Kind: "blob"})
	assert.ErrorIs(t, err, bounds.ErrUnknownKind)

	_, err = Build[float32](Document{})
	assert.ErrorIs(t, err, ErrEmptyScene)
}
