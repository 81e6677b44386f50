package pipeline

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jamwevan/MATH-440/field"
	"github.com/jamwevan/MATH-440/gauss"
)

func TestRunProducesEveryStage(t *testing.T) {
	res, err := Run(Config{Q: 3})
	if err != nil {
		t.Fatalf("Run: %s", err)
	}
	if res.Field == nil || res.Index == nil || res.Table == nil || res.Groups == nil {
		t.Fatalf("incomplete result: %+v", res)
	}
	if res.Table.Rows() != 8 || res.Table.Cols() != 2 {
		t.Errorf("table %dx%d, want 8x2", res.Table.Rows(), res.Table.Cols())
	}
	total := 0
	for _, g := range res.Groups {
		total += g.Size()
	}
	if total != 8 {
		t.Errorf("groups cover %d rows, want 8", total)
	}
}

func TestRunRejectsInvalidQ(t *testing.T) {
	for _, q := range []int{1, 4} {
		p := New(Config{Q: q})
		res, err := p.Run()
		if err == nil || res != nil {
			t.Fatalf("Run(q=%d) = %v, %v; want error", q, res, err)
		}
		var perr *field.InvalidParameterError
		if !errors.As(err, &perr) {
			t.Fatalf("Run(q=%d) error %T, want *InvalidParameterError", q, err)
		}
		if p.Current != sInitId {
			t.Errorf("q=%d: pipeline moved to state %d", q, p.Current)
		}
	}
}

func TestRunMatchesDirectComputation(t *testing.T) {
	res, err := Run(Config{Q: 5, Workers: 2, TableDir: filepath.Join(t.TempDir(), "tables")})
	if err != nil {
		t.Fatalf("Run: %s", err)
	}
	direct, err := gauss.Compute(5, gauss.Options{})
	if err != nil {
		t.Fatalf("gauss.Compute: %s", err)
	}
	if !res.Table.Equal(direct) {
		t.Fatalf("pipeline table differs from direct computation")
	}
}

func TestRunIsRepeatable(t *testing.T) {
	dir := t.TempDir()
	a, err := Run(Config{Q: 5, TableDir: dir})
	if err != nil {
		t.Fatalf("Run: %s", err)
	}
	// second run reads the cached log tables
	b, err := Run(Config{Q: 5, TableDir: dir})
	if err != nil {
		t.Fatalf("Run: %s", err)
	}
	if !a.Table.Equal(b.Table) {
		t.Errorf("tables differ between runs")
	}
	if !reflect.DeepEqual(a.Groups, b.Groups) {
		t.Errorf("groups differ between runs: %v vs %v", a.Groups, b.Groups)
	}
}

func TestGroupingNeedsCompleteTable(t *testing.T) {
	p := New(Config{Q: 3})
	if err := (&groupAction{}).Execute(p); err == nil {
		t.Fatalf("grouping ran without a table")
	}
}

func TestUnknownStateRejected(t *testing.T) {
	p := New(Config{Q: 3})
	p.Current = StateId(42)
	if _, err := p.getNextState(); !errors.Is(err, ErrEventRejected) {
		t.Fatalf("getNextState = %v, want ErrEventRejected", err)
	}
}
