package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"FlowyBounds/bounds"
	"FlowyBounds/config"
	"FlowyBounds/scene"
)

// scalarFor picks the coordinate type: the flag wins over the scene, the
// scene over the config file.
func (a *app) scalarFor(doc scene.Document) string {
	if a.scalar != "" {
		return a.scalar
	}
	if doc.Scalar != "" {
		return doc.Scalar
	}
	return a.config.Scalar
}

func (a *app) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <scene>",
		Short: "Classify every ordered pair of volumes in a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			scalar := a.scalarFor(doc)
			a.logger.Info("Classify scene",
				zap.String("scene", doc.Name),
				zap.String("scalar", scalar),
				zap.Int("volumes", len(doc.Volumes)))

			switch scalar {
			case "float32":
				return classify[float32](cmd.Context(), a, doc, cmd.OutOrStdout())
			case "float64":
				return classify[float64](cmd.Context(), a, doc, cmd.OutOrStdout())
			case "int32":
				return classify[int32](cmd.Context(), a, doc, cmd.OutOrStdout())
			case "int64":
				return classify[int64](cmd.Context(), a, doc, cmd.OutOrStdout())
			}
			return fmt.Errorf("%w: %q", config.ErrUnknownScalar, scalar)
		},
	}
}

func classify[T bounds.Scalar](ctx context.Context, a *app, doc scene.Document, w io.Writer) error {
	volumes, err := scene.Build[T](doc)
	if err != nil {
		return err
	}
	report, err := newEvaluator[T](a).Evaluate(ctx, volumes)
	if err != nil {
		return err
	}
	return report.WriteText(w)
}

func (a *app) mergeCmd() *cobra.Command {
	var kindName string
	cmd := &cobra.Command{
		Use:   "merge <scene>",
		Short: "Enclose every volume of a scene in one volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := bounds.ParseKind(kindName)
			if err != nil {
				return err
			}
			doc, err := scene.Load(args[0])
			if err != nil {
				return err
			}

			switch scalar := a.scalarFor(doc); scalar {
			case "float32":
				return merge[float32](cmd.Context(), a, doc, kind, cmd.OutOrStdout())
			case "float64":
				return merge[float64](cmd.Context(), a, doc, kind, cmd.OutOrStdout())
			case "int32":
				return merge[int32](cmd.Context(), a, doc, kind, cmd.OutOrStdout())
			case "int64":
				return merge[int64](cmd.Context(), a, doc, kind, cmd.OutOrStdout())
			default:
				return fmt.Errorf("%w: %q", config.ErrUnknownScalar, scalar)
			}
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", "box", "Kind of the enclosing volume")
	return cmd
}

func merge[T bounds.Scalar](ctx context.Context, a *app, doc scene.Document, kind bounds.Kind, w io.Writer) error {
	volumes, err := scene.Build[T](doc)
	if err != nil {
		return err
	}
	v, err := newEvaluator[T](a).Enclose(ctx, volumes, kind)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v)
	return err
}

func (a *app) fitCmd() *cobra.Command {
	var (
		kindName    string
		incremental bool
	)
	cmd := &cobra.Command{
		Use:   "fit x,y[,z] ...",
		Short: "Fit a volume to a list of points",
		Long: `fit builds a volume around the given points. By default the volume is
created from the points' bounds in one pass; --incremental adds them one by
one, which for round kinds can give a tighter fit.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := bounds.ParseKind(kindName)
			if err != nil {
				return err
			}
			points, err := parsePoints(args, kind.Dimension())
			if err != nil {
				return err
			}
			e := scene.Entry{ID: uuid.New(), Kind: kind.String(), Points: points}

			switch scalar := a.scalarFor(scene.Document{}); scalar {
			case "float32":
				return fit[float32](a, e, incremental, cmd.OutOrStdout())
			case "float64":
				return fit[float64](a, e, incremental, cmd.OutOrStdout())
			case "int32":
				return fit[int32](a, e, incremental, cmd.OutOrStdout())
			case "int64":
				return fit[int64](a, e, incremental, cmd.OutOrStdout())
			default:
				return fmt.Errorf("%w: %q", config.ErrUnknownScalar, scalar)
			}
		},
	}
	cmd.Flags().StringVar(&kindName, "kind", "sphere", "Kind of the fitted volume")
	cmd.Flags().BoolVar(&incremental, "incremental", false, "Add the points one at a time")
	return cmd
}

func fit[T bounds.Scalar](a *app, e scene.Entry, incremental bool, w io.Writer) error {
	var (
		v   bounds.Volume[T]
		err error
	)
	if incremental {
		v, err = fitIncremental[T](e)
	} else {
		v, err = scene.BuildEntry[T](e)
	}
	if err != nil {
		return err
	}
	a.logger.Debug("Fitted volume",
		zap.Stringer("id", e.ID),
		zap.Int("points", len(e.Points)),
		zap.Bool("incremental", incremental))
	_, err = fmt.Fprintln(w, v)
	return err
}

func fitIncremental[T bounds.Scalar](e scene.Entry) (bounds.Volume[T], error) {
	kind, err := bounds.ParseKind(e.Kind)
	if err != nil {
		return nil, err
	}
	v, err := bounds.New[T](kind)
	if err != nil {
		return nil, err
	}
	for _, p := range e.Points {
		var z float64
		if len(p) > 2 {
			z = p[2]
		}
		pt := bounds.V3(bounds.Convert[T](p[0]), bounds.Convert[T](p[1]), bounds.Convert[T](z))
		if err := bounds.AddPoint3(v, pt); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// parsePoints parses "x,y" or "x,y,z" arguments.
func parsePoints(args []string, dim int) ([][]float64, error) {
	points := make([][]float64, 0, len(args))
	for _, arg := range args {
		fields := strings.Split(arg, ",")
		if len(fields) != dim {
			return nil, fmt.Errorf("point %q: want %d coordinates, got %d", arg, dim, len(fields))
		}
		p := make([]float64, dim)
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("point %q: %w", arg, err)
			}
			p[i] = v
		}
		points = append(points, p)
	}
	return points, nil
}

func (a *app) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List volume kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, k := range bounds.Kinds {
				shape := "box"
				if k.Round() {
					shape = "round"
				}
				if _, err := fmt.Fprintf(w, "%-10s %dD %s\n", k, k.Dimension(), shape); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newEvaluator[T bounds.Scalar](a *app) *scene.Evaluator[T] {
	return scene.NewEvaluator[T](a.logger, a.config.ReportLimiter.Limiter(), a.metrics)
}
