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
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"FlowyBounds/bounds"
)

// Evaluator classifies the volumes of a scene against each other.
type Evaluator[T bounds.Scalar] struct {
	logger  *zap.Logger
	limiter *rate.Limiter
	metrics *Metrics
}

// NewEvaluator returns an evaluator. limiter bounds the per-pair debug
// logs and metrics may be nil.
func NewEvaluator[T bounds.Scalar](logger *zap.Logger, limiter *rate.Limiter, metrics *Metrics) *Evaluator[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Evaluator[T]{logger: logger, limiter: limiter, metrics: metrics}
}

// Evaluate classifies every ordered pair of distinct volumes. It stops
// between pairs when ctx is done.
func (e *Evaluator[T]) Evaluate(ctx context.Context, volumes []Named[T]) (Report, error) {
	start := time.Now()
	defer e.metrics.instrumentEvaluation(start)

	report := Report{
		Totals: make(map[bounds.Collision]int, 3),
		Pairs:  make([]PairResult, 0, len(volumes)*max(len(volumes)-1, 0)),
	}
	debug := e.logger.Core().Enabled(zap.DebugLevel)

	for i, a := range volumes {
		for j, b := range volumes {
			if i == j {
				continue
			}
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}

			result, err := bounds.Collide(a.Volume, b.Volume)
			if err != nil {
				return Report{}, fmt.Errorf("classify %s against %s: %w", a.Label(), b.Label(), err)
			}
			report.Pairs = append(report.Pairs, PairResult{
				Receiver: refOf(a),
				Other:    refOf(b),
				Result:   result,
			})
			report.Totals[result]++
			e.metrics.instrumentPair(a.Volume.Kind(), b.Volume.Kind(), result)

			if !debug {
				continue
			}
			if e.limiter.Allow() {
				e.logger.Debug("Classified pair",
					zap.String("receiver", a.Label()),
					zap.String("other", b.Label()),
					zap.Stringer("result", result))
			} else {
				report.Suppressed++
			}
		}
	}

	if report.Suppressed > 0 {
		e.logger.Debug("Pair logs suppressed", zap.Int("count", report.Suppressed))
	}
	e.logger.Info("Scene evaluated",
		zap.Int("volumes", len(volumes)),
		zap.Int("pairs", len(report.Pairs)),
		zap.Duration("elapsed", time.Since(start)))
	return report, nil
}

// Enclose returns a fresh volume of kind that contains every volume. Round
// kinds start from the sphere or circle around the first volume's bounds
// and grow from there.
func (e *Evaluator[T]) Enclose(ctx context.Context, volumes []Named[T], kind bounds.Kind) (bounds.Volume[T], error) {
	if len(volumes) == 0 {
		return nil, ErrEmptyScene
	}
	out, err := bounds.New[T](kind)
	if err != nil {
		return nil, err
	}
	if err := seed(out, volumes[0].Volume); err != nil {
		return nil, err
	}

	for _, n := range volumes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := bounds.Merge(out, n.Volume); err != nil {
			return nil, fmt.Errorf("enclose %s: %w", n.Label(), err)
		}
	}
	e.logger.Debug("Enclosed scene",
		zap.Stringer("kind", kind),
		zap.Int("volumes", len(volumes)),
		zap.Stringer("result", out))
	return out, nil
}

// seed centers a fresh round volume on first so that growth does not start
// from the origin.
func seed[T bounds.Scalar](out, first bounds.Volume[T]) error {
	box := bounds.EmptyBox[T]()
	if err := bounds.Merge[T](&box, first); err != nil {
		return err
	}
	if box.IsEmpty() {
		return nil
	}
	switch o := out.(type) {
	case *bounds.Sphere[T]:
		o.CreateFromMinMax(box.Min, box.Max)
	case *bounds.Circle[T]:
		r := box.Flatten()
		o.CreateFromMinMax(r.Min, r.Max)
	}
	return nil
}
