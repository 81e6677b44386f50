package gauss

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"golang.org/x/sync/errgroup"

	"github.com/jamwevan/MATH-440/character"
	"github.com/jamwevan/MATH-440/cyclo"
	"github.com/jamwevan/MATH-440/dlog"
	"github.com/jamwevan/MATH-440/field"
	"github.com/jamwevan/MATH-440/utils"
)

// Options tunes Compute. The zero value is usable.
type Options struct {
	// Workers bounds the number of rows computed at once; <= 0 means NumCPU.
	Workers int
	// Progress receives a progress bar over the rows when not nil.
	Progress io.Writer
}

// point is the read-only data of one unit x needed by every cell.
type point struct {
	trace   int
	log     int
	normLog int
}

// Compute builds GF(q^2) and its discrete log index, then fills the table.
// Invalid q fails before any cell is computed.
func Compute(q int, opts Options) (*Table, error) {
	f, err := field.Build(q)
	if err != nil {
		return nil, err
	}
	ix, err := dlog.Generate(f, nil)
	if err != nil {
		return nil, err
	}
	return ComputeIndex(ix, opts)
}

// ComputeIndex fills the table over a prepared index. Every cell is an
// exhaustive sum over the q^2-1 units; each worker owns whole rows and
// writes each of its cells exactly once.
func ComputeIndex(ix *dlog.Index, opts Options) (*Table, error) {
	f := ix.Field()
	q := f.Q()
	chars := character.New(q)
	ring, err := chars.Ring()
	if err != nil {
		return nil, fmt.Errorf("build cyclotomic ring for q = %d: %w", q, err)
	}

	units := f.Units()
	points := make([]point, len(units))
	for i, x := range units {
		points[i] = point{trace: ix.Trace(x), log: ix.Log(x), normLog: ix.NormLog(x)}
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	t := newTable(q, ring)
	start := time.Now()
	bar := utils.NewBar(opts.Progress, t.rows, fmt.Sprintf("Gauss sums q=%d", q))

	var g errgroup.Group
	g.SetLimit(workers)
	for theta := 0; theta < t.rows; theta++ {
		theta := theta
		g.Go(func() error {
			acc := ring.NewAccumulator()
			for alpha := 0; alpha < t.cols; alpha++ {
				t.cells[theta*t.cols+alpha] = sum(acc, chars, points, theta, alpha)
			}
			bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	bar.Finish()

	log.Debug("Filled Gauss sum table", "q", q, "rows", t.rows, "cols", t.cols,
		"workers", workers, "elapsed", time.Since(start))
	return t, nil
}

// sum evaluates S(theta, alpha) term by term.
func sum(acc *cyclo.Accumulator, chars *character.Evaluator, points []point, theta, alpha int) cyclo.Number {
	acc.Reset()
	for _, p := range points {
		term := chars.Psi(p.trace).
			Mul(chars.Chi(theta, p.log)).
			Mul(chars.Chi(alpha, p.normLog))
		acc.Add(term)
	}
	return acc.Number()
}
