package export

import (
	"math"
	"testing"

	"github.com/jamwevan/MATH-440/gauss"
	"github.com/jamwevan/MATH-440/grouping"
)

func TestWriteAndLoad(t *testing.T) {
	tab, err := gauss.Compute(3, gauss.Options{Workers: 2})
	if err != nil {
		t.Fatalf("gauss.Compute: %s", err)
	}
	groups := grouping.Rows(tab)
	dir := t.TempDir()
	files, err := WriteNPY(dir, tab, groups)
	if err != nil {
		t.Fatalf("WriteNPY: %s", err)
	}
	if files != FilesFor(dir, 3) {
		t.Errorf("files = %+v, want %+v", files, FilesFor(dir, 3))
	}

	re, err := LoadMatrix(files.Real)
	if err != nil {
		t.Fatalf("LoadMatrix(real): %s", err)
	}
	im, err := LoadMatrix(files.Imag)
	if err != nil {
		t.Fatalf("LoadMatrix(imag): %s", err)
	}
	rows, cols := re.Dims()
	if rows != 8 || cols != 2 {
		t.Fatalf("real part %dx%d, want 8x2", rows, cols)
	}
	for theta := 0; theta < rows; theta++ {
		for alpha := 0; alpha < cols; alpha++ {
			z := tab.At(theta, alpha).Complex()
			if math.Abs(re.At(theta, alpha)-real(z)) > 1e-12 || math.Abs(im.At(theta, alpha)-imag(z)) > 1e-12 {
				t.Fatalf("cell (%d,%d) = %v+%vi, want %v", theta, alpha, re.At(theta, alpha), im.At(theta, alpha), z)
			}
		}
	}
	if re.At(0, 0) != -1 || re.At(0, 1) != 3 {
		t.Errorf("row 0 = [%v %v], want [-1 3]", re.At(0, 0), re.At(0, 1))
	}

	labels, err := LoadLabels(files.Labels)
	if err != nil {
		t.Fatalf("LoadLabels: %s", err)
	}
	want := grouping.Labels(groups, tab.Rows())
	if len(labels) != len(want) {
		t.Fatalf("%d labels, want %d", len(labels), len(want))
	}
	for i := range want {
		if labels[i] != int64(want[i]) {
			t.Fatalf("label[%d] = %d, want %d", i, labels[i], want[i])
		}
	}
}
