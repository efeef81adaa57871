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
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a volume handle has no known shape.
var ErrUnknownKind = errors.New("unknown bounding volume kind")

// Kind tags the concrete shape behind a Volume.
type Kind int32

const (
	KindSphere Kind = iota
	KindCircle
	KindBox
	KindRectangle
)

// Kinds lists every shape kind.
var Kinds = []Kind{KindSphere, KindCircle, KindBox, KindRectangle}

var kindNames = [...]string{
	KindSphere:    "sphere",
	KindCircle:    "circle",
	KindBox:       "box",
	KindRectangle: "rectangle",
}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// Valid reports whether k is one of the four shapes.
func (k Kind) Valid() bool { return k >= KindSphere && k <= KindRectangle }

// Dimension returns 3 for spheres and boxes and 2 for circles and rectangles.
func (k Kind) Dimension() int {
	switch k {
	case KindSphere, KindBox:
		return 3
	case KindCircle, KindRectangle:
		return 2
	}
	return 0
}

// Round reports whether k is stored as center and radius.
func (k Kind) Round() bool { return k == KindSphere || k == KindCircle }

// ParseKind parses a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int32(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) (err error) {
	*k, err = ParseKind(string(text))
	return
}

// Collision classifies how another volume relates to a receiver.
type Collision int32

const (
	// Outside means the volumes do not overlap.
	Outside Collision = -1
	// Intersects means the volumes overlap but the receiver does not
	// contain the other volume.
	Intersects Collision = 0
	// Inside means the other volume lies entirely inside the receiver.
	Inside Collision = 1
)

func (c Collision) String() string {
	switch c {
	case Outside:
		return "outside"
	case Intersects:
		return "intersects"
	case Inside:
		return "inside"
	}
	return fmt.Sprintf("Collision(%d)", int32(c))
}
