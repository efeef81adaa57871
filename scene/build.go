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
	"fmt"

	"github.com/google/uuid"

	"FlowyBounds/bounds"
)

// Named is a built volume together with the entry it came from.
type Named[T bounds.Scalar] struct {
	ID     uuid.UUID
	Name   string
	Volume bounds.Volume[T]
}

// Label returns the name of the volume, or its ID when it has none.
func (n Named[T]) Label() string {
	if n.Name != "" {
		return n.Name
	}
	return n.ID.String()
}

// Build converts the entries of doc into volumes with coordinate type T.
func Build[T bounds.Scalar](doc Document) ([]Named[T], error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	out := make([]Named[T], 0, len(doc.Volumes))
	for i, e := range doc.Volumes {
		v, err := BuildEntry[T](e)
		if err != nil {
			return nil, fmt.Errorf("volume %d (%s): %w", i, e.Label(), err)
		}
		out = append(out, Named[T]{ID: e.ID, Name: e.Name, Volume: v})
	}
	return out, nil
}

// BuildEntry converts one entry.
func BuildEntry[T bounds.Scalar](e Entry) (bounds.Volume[T], error) {
	if errs := e.validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	kind, err := bounds.ParseKind(e.Kind)
	if err != nil {
		return nil, err
	}
	v, err := bounds.New[T](kind)
	if err != nil {
		return nil, err
	}

	switch v := v.(type) {
	case *bounds.Sphere[T]:
		if len(e.Points) > 0 {
			v.CreateFromPoints(points3[T](e.Points))
		} else {
			v.Set(vec3[T](e.Center), bounds.Convert[T](e.Radius))
		}
	case *bounds.Circle[T]:
		if len(e.Points) > 0 {
			v.CreateFromPoints(points2[T](e.Points))
		} else {
			v.Set(vec2[T](e.Center), bounds.Convert[T](e.Radius))
		}
	case *bounds.Box[T]:
		if len(e.Points) > 0 {
			v.CreateFromPoints(points3[T](e.Points))
		} else {
			v.Set(vec3[T](e.Min), vec3[T](e.Max))
		}
	case *bounds.Rectangle[T]:
		if len(e.Points) > 0 {
			v.CreateFromPoints(points2[T](e.Points))
		} else {
			v.Set(vec2[T](e.Min), vec2[T](e.Max))
		}
	}
	return v, nil
}

func vec3[T bounds.Scalar](c []float64) bounds.Vec3[T] {
	return bounds.V3(bounds.Convert[T](c[0]), bounds.Convert[T](c[1]), bounds.Convert[T](c[2]))
}

func vec2[T bounds.Scalar](c []float64) bounds.Vec2[T] {
	return bounds.V2(bounds.Convert[T](c[0]), bounds.Convert[T](c[1]))
}

func points3[T bounds.Scalar](ps [][]float64) []bounds.Vec3[T] {
	out := make([]bounds.Vec3[T], len(ps))
	for i, p := range ps {
		out[i] = vec3[T](p)
	}
	return out
}

func points2[T bounds.Scalar](ps [][]float64) []bounds.Vec2[T] {
	out := make([]bounds.Vec2[T], len(ps))
	for i, p := range ps {
		out[i] = vec2[T](p)
	}
	return out
}
