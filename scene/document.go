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

// Package scene loads lists of bounding volumes from TOML or YAML files and
// classifies every pair of them.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"FlowyBounds/bounds"
	"FlowyBounds/config"
)

var (
	ErrEmptyScene     = errors.New("scene has no volumes")
	ErrDuplicateName  = errors.New("duplicate volume name")
	ErrDuplicateID    = errors.New("duplicate volume id")
	ErrUnknownFormat  = errors.New("unknown scene format")
	ErrBadCoordinates = errors.New("bad coordinates")
)

// Format names a scene codec.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf picks the codec from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Document is a scene file.
type Document struct {
	Name string `toml:"name" yaml:"name"`
	// Scalar overrides the configured coordinate type for this scene.
	Scalar  string  `toml:"scalar,omitempty" yaml:"scalar,omitempty"`
	Volumes []Entry `toml:"volume" yaml:"volumes"`
}

// Entry describes one volume. Round kinds use Center and Radius, box kinds
// use Min and Max. When Points is set the volume is fitted to them instead.
type Entry struct {
	ID     uuid.UUID   `toml:"id" yaml:"id"`
	Name   string      `toml:"name" yaml:"name"`
	Kind   string      `toml:"kind" yaml:"kind"`
	Center []float64   `toml:"center,omitempty" yaml:"center,omitempty"`
	Radius float64     `toml:"radius,omitempty" yaml:"radius,omitempty"`
	Min    []float64   `toml:"min,omitempty" yaml:"min,omitempty"`
	Max    []float64   `toml:"max,omitempty" yaml:"max,omitempty"`
	Points [][]float64 `toml:"points,omitempty" yaml:"points,omitempty"`
}

// Label returns the name of the entry, or its ID when it has none.
func (e Entry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return e.ID.String()
}

// Load reads and validates the scene at path.
func Load(path string) (Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Document{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return Document{}, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, nil
}

// Decode reads a scene, fills in missing IDs and validates it.
func Decode(r io.Reader, format Format) (Document, error) {
	var doc Document
	switch format {
	case TOML:
		meta, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return Document{}, fmt.Errorf("decode toml scene: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			return Document{}, config.ErrUnknownKeys(keys)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return Document{}, ErrEmptyScene
			}
			return Document{}, fmt.Errorf("decode yaml scene: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	for i := range doc.Volumes {
		if doc.Volumes[i].ID == uuid.Nil {
			doc.Volumes[i].ID = uuid.New()
		}
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Encode writes doc in the given format.
func Encode(w io.Writer, doc Document, format Format) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ValidationErrors collects every problem found in a document.
type ValidationErrors []error

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "invalid scene: [" + strings.Join(msgs, "; ") + "]"
}

func (e ValidationErrors) Unwrap() []error { return e }

// Validate checks every entry and reports all problems at once.
func (d Document) Validate() error {
	if len(d.Volumes) == 0 {
		return ErrEmptyScene
	}

	var errs ValidationErrors
	if d.Scalar != "" && !slices.Contains(config.Scalars, d.Scalar) {
		errs = append(errs, fmt.Errorf("%w: %q", config.ErrUnknownScalar, d.Scalar))
	}

	names := make(map[string]int)
	ids := make(map[uuid.UUID]int)
	for i, e := range d.Volumes {
		if e.Name != "" {
			if first, ok := names[e.Name]; ok {
				errs = append(errs, fmt.Errorf("volume %d: %w %q (first used by volume %d)", i, ErrDuplicateName, e.Name, first))
			} else {
				names[e.Name] = i
			}
		}
		if first, ok := ids[e.ID]; ok {
			errs = append(errs, fmt.Errorf("volume %d: %w %s (first used by volume %d)", i, ErrDuplicateID, e.ID, first))
		} else {
			ids[e.ID] = i
		}
		for _, err := range e.validate() {
			errs = append(errs, fmt.Errorf("volume %d (%s): %w", i, e.Label(), err))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (e Entry) validate() (errs []error) {
	kind, err := bounds.ParseKind(e.Kind)
	if err != nil {
		return []error{err}
	}
	dim := kind.Dimension()
	checkVec := func(field string, v []float64) {
		if len(v) != dim {
			errs = append(errs, fmt.Errorf("%w: %s has %d components, %s needs %d", ErrBadCoordinates, field, len(v), kind, dim))
		}
	}

	if len(e.Points) > 0 {
		for i, p := range e.Points {
			checkVec(fmt.Sprintf("points[%d]", i), p)
		}
		return errs
	}

	if kind.Round() {
		checkVec("center", e.Center)
		if e.Radius < 0 {
			errs = append(errs, fmt.Errorf("%w: negative radius %v", ErrBadCoordinates, e.Radius))
		}
		return errs
	}

	checkVec("min", e.Min)
	checkVec("max", e.Max)
	if len(errs) == 0 {
		for i := range dim {
			if e.Min[i] > e.Max[i] {
				errs = append(errs, fmt.Errorf("%w: min %v exceeds max %v", ErrBadCoordinates, e.Min, e.Max))
				break
			}
		}
	}
	return errs
}
