// Package export stores a computed table in numpy format: the real and
// imaginary parts of the floating point projection as 2-D arrays, and the
// group label of every row.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kshedden/gonpy"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/jamwevan/MATH-440/gauss"
	"github.com/jamwevan/MATH-440/grouping"
)

// Files names the arrays written by WriteNPY.
type Files struct {
	Real   string
	Imag   string
	Labels string
}

// FilesFor returns the file names used for characteristic q under dir.
func FilesFor(dir string, q int) Files {
	return Files{
		Real:   filepath.Join(dir, fmt.Sprintf("gauss_q%d_real.npy", q)),
		Imag:   filepath.Join(dir, fmt.Sprintf("gauss_q%d_imag.npy", q)),
		Labels: filepath.Join(dir, fmt.Sprintf("gauss_q%d_labels.npy", q)),
	}
}

// WriteNPY writes the projection of t and the labels of groups under dir.
func WriteNPY(dir string, t *gauss.Table, groups []grouping.Group) (Files, error) {
	files := FilesFor(dir, t.Q())
	if err := os.MkdirAll(dir, 0o777); err != nil {
		return files, fmt.Errorf("create export dir: %w", err)
	}

	z := t.Complex()
	re := make([]float64, len(z))
	im := make([]float64, len(z))
	for i, v := range z {
		re[i], im[i] = real(v), imag(v)
	}
	if err := write(files.Real, mat.NewDense(t.Rows(), t.Cols(), re)); err != nil {
		return files, err
	}
	if err := write(files.Imag, mat.NewDense(t.Rows(), t.Cols(), im)); err != nil {
		return files, err
	}

	labels := grouping.Labels(groups, t.Rows())
	out := make([]int64, len(labels))
	for i, l := range labels {
		out[i] = int64(l)
	}
	if err := write(files.Labels, out); err != nil {
		return files, err
	}
	return files, nil
}

func write(path string, val any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := npyio.Write(f, val); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// LoadMatrix reads a 2-D float64 array written by WriteNPY.
func LoadMatrix(path string) (*mat.Dense, error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if len(r.Shape) != 2 {
		return nil, fmt.Errorf("%s: shape %v is not 2-D", path, r.Shape)
	}
	data, err := r.GetFloat64()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	m := mat.NewDense(r.Shape[0], r.Shape[1], data)
	if r.ColumnMajor {
		t := mat.NewDense(r.Shape[1], r.Shape[0], data)
		m = mat.DenseCopyOf(t.T())
	}
	return m, nil
}

// LoadLabels reads the group label of every row.
func LoadLabels(path string) ([]int64, error) {
	r, err := gonpy.NewFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	labels, err := r.GetInt64()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return labels, nil
}
