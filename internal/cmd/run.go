// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsas/internal/config"
	"github.com/katalvlaran/lvsas/internal/store"
	"github.com/katalvlaran/lvsas/model"
)

var (
	runDB    string
	runImage bool
)

var runCmd = &cobra.Command{
	Use:   "run <job.hcl>",
	Short: "Evaluate a job file",
	Long: `Evaluate the model described by an HCL job file. The q block produces a
1D curve; the detector block produces a 2D image. Both are printed, and saved
as runs when --db is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runJob,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runDB, "db", "", "DuckDB database to record runs in")
	runCmd.Flags().BoolVar(&runImage, "image", false, "Print every detector pixel instead of a summary")
}

// evaluation is one computed result ready to print and store.
type evaluation struct {
	kind   string
	points []store.Point
	rows   int
	cols   int
}

func runJob(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger := zap.L().With(zap.String("job", path))

	job, err := config.Load(path)
	if err != nil {
		return err
	}
	plugin, err := model.Lookup(job.Model)
	if err != nil {
		return err
	}
	opts, err := job.Options(plugin.Info())
	if err != nil {
		return err
	}
	in, err := plugin.Create(opts...)
	if err != nil {
		return err
	}
	defer in.Destroy()

	values, err := job.Values(in.Info())
	if err != nil {
		return err
	}
	block, err := in.Encode(values)
	if err != nil {
		return err
	}
	logger.Debug("parameter block encoded", zap.String("model", in.Name()), zap.Int("bytes", len(block)))

	er, err := in.CalculateER(block)
	if err != nil {
		return err
	}
	vr, err := in.CalculateVR(block)
	if err != nil {
		return err
	}

	var evals []evaluation
	q, err := job.QValues()
	if err != nil {
		return err
	}
	if q != nil {
		iq := make([]float64, len(q))
		if err = in.CalculateQ(block, iq, q); err != nil {
			return err
		}
		ev := evaluation{kind: store.Kind1D, points: make([]store.Point, len(q))}
		for i := range q {
			ev.points[i] = store.Point{Q: q[i], IQ: iq[i]}
		}
		evals = append(evals, ev)
	}
	if qx, qy, ok := job.DetectorAxes(); ok {
		img, err := in.CalculateImage(block, qx, qy)
		if err != nil {
			return err
		}
		ev := evaluation{kind: store.Kind2D, rows: img.Rows(), cols: img.Cols()}
		fx, fy := img.Flatten()
		data := img.Data()
		ev.points = make([]store.Point, len(data))
		for i := range data {
			ev.points[i] = store.Point{Q: math.Hypot(fx[i], fy[i]), QX: fx[i], QY: fy[i], IQ: data[i]}
		}
		evals = append(evals, ev)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "model %s  ER=%g  VR=%g\n", in.Name(), er, vr)
	for _, ev := range evals {
		if err = printEvaluation(out, ev); err != nil {
			return err
		}
	}

	if runDB == "" {
		return nil
	}

	return saveEvaluations(cmd.Context(), logger, path, in.Name(), er, vr, evals)
}

func printEvaluation(out io.Writer, ev evaluation) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if ev.kind == store.Kind1D {
		fmt.Fprintln(w, "\nq\tI(q)")
		for _, p := range ev.points {
			fmt.Fprintf(w, "%g\t%g\n", p.Q, p.IQ)
		}

		return w.Flush()
	}

	var sum float64
	peak := math.Inf(-1)
	for _, p := range ev.points {
		sum += p.IQ
		peak = math.Max(peak, p.IQ)
	}
	fmt.Fprintf(w, "\ndetector %dx%d\tsum=%g\tmax=%g\n", ev.rows, ev.cols, sum, peak)
	if runImage {
		fmt.Fprintln(w, "qx\tqy\tI")
		for _, p := range ev.points {
			fmt.Fprintf(w, "%g\t%g\t%g\n", p.QX, p.QY, p.IQ)
		}
	}

	return w.Flush()
}

func saveEvaluations(ctx context.Context, logger *zap.Logger, source, name string, er, vr float64, evals []evaluation) error {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := store.Open(runDB, store.WithLogger(logger))
	if err != nil {
		return err
	}
	defer db.Close()

	for _, ev := range evals {
		id, err := db.SaveRun(ctx, store.Run{
			Model:  name,
			Source: source,
			Kind:   ev.kind,
			ER:     er,
			VR:     vr,
			Points: ev.points,
		})
		if err != nil {
			return err
		}
		logger.Info("run recorded", zap.Int64("id", id), zap.String("kind", ev.kind), zap.String("db", runDB))
	}

	return nil
}
