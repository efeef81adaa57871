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
	"io"
	"text/tabwriter"

	"github.com/google/uuid"

	"FlowyBounds/bounds"
)

// Ref identifies a volume in a report.
type Ref struct {
	ID   uuid.UUID
	Name string
	Kind bounds.Kind
}

func refOf[T bounds.Scalar](n Named[T]) Ref {
	return Ref{ID: n.ID, Name: n.Name, Kind: n.Volume.Kind()}
}

func (r Ref) String() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID.String()
}

// PairResult is the classification of Other against Receiver.
type PairResult struct {
	Receiver Ref
	Other    Ref
	Result   bounds.Collision
}

// Report is the outcome of Evaluate.
type Report struct {
	Pairs  []PairResult
	Totals map[bounds.Collision]int
	// Suppressed counts pair logs dropped by the rate limiter.
	Suppressed int
}

// Count returns how many pairs ended with result c.
func (r Report) Count(c bounds.Collision) int { return r.Totals[c] }

// WriteText renders the report as an aligned table followed by totals.
func (r Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RECEIVER\tKIND\tOTHER\tKIND\tRESULT")
	for _, p := range r.Pairs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Receiver, p.Receiver.Kind, p.Other, p.Other.Kind, p.Result)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d pairs: %d inside, %d intersecting, %d outside\n",
		len(r.Pairs), r.Count(bounds.Inside), r.Count(bounds.Intersects), r.Count(bounds.Outside))
	return err
}
