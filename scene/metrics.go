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
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"FlowyBounds/bounds"
)

const (
	receiverLabel = "receiver"
	otherLabel    = "other"
	resultLabel   = "result"
)

// Metrics counts classified pairs and times whole evaluations.
type Metrics struct {
	pairs    *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics registers the evaluation metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		pairs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bounds_pairs_total",
			Help: "The number of classified volume pairs.",
		}, []string{
			receiverLabel,
			otherLabel,
			resultLabel,
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bounds_evaluation_seconds",
			Help:    "The time to classify every pair of a scene.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
}

func (m *Metrics) instrumentPair(receiver, other bounds.Kind, result bounds.Collision) {
	if m == nil {
		return
	}
	m.pairs.With(prometheus.Labels{
		receiverLabel: receiver.String(),
		otherLabel:    other.String(),
		resultLabel:   result.String(),
	}).Inc()
}

func (m *Metrics) instrumentEvaluation(start time.Time) {
	if m == nil {
		return
	}
	m.duration.Observe(time.Since(start).Seconds())
}

// WriteMetrics dumps everything g gathers in the Prometheus text format.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
