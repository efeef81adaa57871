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
	"fmt"
)

// Volume is a handle to one of the four shapes. It is implemented by
// *Sphere, *Circle, *Box and *Rectangle only.
//
// The free functions Collide, Intersects and Merge dispatch on both
// operands, so callers holding a mixed list of volumes do not have to
// switch on Kind themselves.
type Volume[T Scalar] interface {
	Kind() Kind
	String() string

	collide(other Volume[T]) Collision
	intersects(other Volume[T]) bool
	merge(other Volume[T])
	addPoint3(p Vec3[T])
	clone() Volume[T]
}

// New returns a fresh volume of kind k. Boxes and rectangles start empty,
// spheres and circles start at the origin with zero radius.
func New[T Scalar](k Kind) (Volume[T], error) {
	switch k {
	case KindSphere:
		return new(Sphere[T]), nil
	case KindCircle:
		return new(Circle[T]), nil
	case KindBox:
		b := EmptyBox[T]()
		return &b, nil
	case KindRectangle:
		r := EmptyRectangle[T]()
		return &r, nil
	}
	return nil, fmt.Errorf("new volume: %w: %v", ErrUnknownKind, k)
}

// Collide classifies other against receiver.
func Collide[T Scalar](receiver, other Volume[T]) (Collision, error) {
	if err := checkPair(receiver, other); err != nil {
		return Outside, fmt.Errorf("collide: %w", err)
	}
	return receiver.collide(other), nil
}

// Intersects reports whether receiver and other overlap.
func Intersects[T Scalar](receiver, other Volume[T]) (bool, error) {
	if err := checkPair(receiver, other); err != nil {
		return false, fmt.Errorf("intersects: %w", err)
	}
	return receiver.intersects(other), nil
}

// Merge grows receiver so that it encloses other.
func Merge[T Scalar](receiver, other Volume[T]) error {
	if err := checkPair(receiver, other); err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	receiver.merge(other)
	return nil
}

// AddPoint3 grows v to include p. Circles and rectangles take the point
// projected onto the plane z = 0.
func AddPoint3[T Scalar](v Volume[T], p Vec3[T]) error {
	if err := check(v); err != nil {
		return fmt.Errorf("add point: %w", err)
	}
	v.addPoint3(p)
	return nil
}

// Clone returns an independent copy of v, or nil for a nil handle.
func Clone[T Scalar](v Volume[T]) Volume[T] {
	if check(v) != nil {
		return nil
	}
	return v.clone()
}

func check[T Scalar](v Volume[T]) error {
	switch v := v.(type) {
	case *Sphere[T]:
		if v != nil {
			return nil
		}
	case *Circle[T]:
		if v != nil {
			return nil
		}
	case *Box[T]:
		if v != nil {
			return nil
		}
	case *Rectangle[T]:
		if v != nil {
			return nil
		}
	}
	return fmt.Errorf("%w: nil %T handle", ErrUnknownKind, v)
}

func checkPair[T Scalar](receiver, other Volume[T]) error {
	if err := check(receiver); err != nil {
		return fmt.Errorf("receiver: %w", err)
	}
	if err := check(other); err != nil {
		return fmt.Errorf("other: %w", err)
	}
	return nil
}

func (s *Sphere[T]) collide(other Volume[T]) Collision {
	switch o := other.(type) {
	case *Sphere[T]:
		return s.CollideSphere(*o)
	case *Circle[T]:
		return s.CollideCircle(*o)
	case *Box[T]:
		return s.CollideBox(*o)
	case *Rectangle[T]:
		return s.CollideRectangle(*o)
	}
	return Outside
}

func (s *Sphere[T]) intersects(other Volume[T]) bool {
	switch o := other.(type) {
	case *Sphere[T]:
		return s.IntersectsSphere(*o)
	case *Circle[T]:
		return s.IntersectsCircle(*o)
	case *Box[T]:
		return s.IntersectsBox(*o)
	case *Rectangle[T]:
		return s.IntersectsRectangle(*o)
	}
	return false
}

func (s *Sphere[T]) merge(other Volume[T]) {
	switch o := other.(type) {
	case *Sphere[T]:
		s.AddSphere(*o)
	case *Circle[T]:
		s.AddCircle(*o)
	case *Box[T]:
		s.AddBox(*o)
	case *Rectangle[T]:
		s.AddRectangle(*o)
	}
}

func (s *Sphere[T]) addPoint3(p Vec3[T]) { s.AddPoint(p) }

func (s *Sphere[T]) clone() Volume[T] {
	c := *s
	return &c
}

func (s *Sphere[T]) String() string {
	return fmt.Sprintf("sphere{center: %v, radius: %v}", s.Center, s.Radius)
}

func (c *Circle[T]) collide(other Volume[T]) Collision {
	switch o := other.(type) {
	case *Sphere[T]:
		return c.CollideSphere(*o)
	case *Circle[T]:
		return c.CollideCircle(*o)
	case *Box[T]:
		return c.CollideBox(*o)
	case *Rectangle[T]:
		return c.CollideRectangle(*o)
	}
	return Outside
}

func (c *Circle[T]) intersects(other Volume[T]) bool {
	switch o := other.(type) {
	case *Sphere[T]:
		return c.IntersectsSphere(*o)
	case *Circle[T]:
		return c.IntersectsCircle(*o)
	case *Box[T]:
		return c.IntersectsBox(*o)
	case *Rectangle[T]:
		return c.IntersectsRectangle(*o)
	}
	return false
}

func (c *Circle[T]) merge(other Volume[T]) {
	switch o := other.(type) {
	case *Sphere[T]:
		c.AddSphere(*o)
	case *Circle[T]:
		c.AddCircle(*o)
	case *Box[T]:
		c.AddBox(*o)
	case *Rectangle[T]:
		c.AddRectangle(*o)
	}
}

func (c *Circle[T]) addPoint3(p Vec3[T]) { c.AddPoint(p.Flatten()) }

func (c *Circle[T]) clone() Volume[T] {
	n := *c
	return &n
}

func (c *Circle[T]) String() string {
	return fmt.Sprintf("circle{center: %v, radius: %v}", c.Center, c.Radius)
}

func (b *Box[T]) collide(other Volume[T]) Collision {
	switch o := other.(type) {
	case *Sphere[T]:
		return b.CollideSphere(*o)
	case *Circle[T]:
		return b.CollideCircle(*o)
	case *Box[T]:
		return b.CollideBox(*o)
	case *Rectangle[T]:
		return b.CollideRectangle(*o)
	}
	return Outside
}

func (b *Box[T]) intersects(other Volume[T]) bool {
	switch o := other.(type) {
	case *Sphere[T]:
		return b.IntersectsSphere(*o)
	case *Circle[T]:
		return b.IntersectsCircle(*o)
	case *Box[T]:
		return b.IntersectsBox(*o)
	case *Rectangle[T]:
		return b.IntersectsRectangle(*o)
	}
	return false
}

func (b *Box[T]) merge(other Volume[T]) {
	switch o := other.(type) {
	case *Sphere[T]:
		b.AddSphere(*o)
	case *Circle[T]:
		b.AddCircle(*o)
	case *Box[T]:
		b.AddBox(*o)
	case *Rectangle[T]:
		b.AddRectangle(*o)
	}
}

func (b *Box[T]) addPoint3(p Vec3[T]) { b.AddPoint(p) }

func (b *Box[T]) clone() Volume[T] {
	c := *b
	return &c
}

func (b *Box[T]) String() string {
	if b.IsEmpty() {
		return "box{empty}"
	}
	return fmt.Sprintf("box{min: %v, max: %v}", b.Min, b.Max)
}

func (r *Rectangle[T]) collide(other Volume[T]) Collision {
	switch o := other.(type) {
	case *Sphere[T]:
		return r.CollideSphere(*o)
	case *Circle[T]:
		return r.CollideCircle(*o)
	case *Box[T]:
		return r.CollideBox(*o)
	case *Rectangle[T]:
		return r.CollideRectangle(*o)
	}
	return Outside
}

func (r *Rectangle[T]) intersects(other Volume[T]) bool {
	switch o := other.(type) {
	case *Sphere[T]:
		return r.IntersectsSphere(*o)
	case *Circle[T]:
		return r.IntersectsCircle(*o)
	case *Box[T]:
		return r.IntersectsBox(*o)
	case *Rectangle[T]:
		return r.IntersectsRectangle(*o)
	}
	return false
}

func (r *Rectangle[T]) merge(other Volume[T]) {
	switch o := other.(type) {
	case *Sphere[T]:
		r.AddSphere(*o)
	case *Circle[T]:
		r.AddCircle(*o)
	case *Box[T]:
		r.AddBox(*o)
	case *Rectangle[T]:
		r.AddRectangle(*o)
	}
}

func (r *Rectangle[T]) addPoint3(p Vec3[T]) { r.AddPoint(p.Flatten()) }

func (r *Rectangle[T]) clone() Volume[T] {
	c := *r
	return &c
}

func (r *Rectangle[T]) String() string {
	if r.IsEmpty() {
		return "rectangle{empty}"
	}
	return fmt.Sprintf("rectangle{min: %v, max: %v}", r.Min, r.Max)
}
