package pipeline

import (
	"errors"

	"github.com/ethereum/go-ethereum/log"

	"github.com/jamwevan/MATH-440/dlog"
	"github.com/jamwevan/MATH-440/field"
	"github.com/jamwevan/MATH-440/gauss"
	"github.com/jamwevan/MATH-440/grouping"
)

type validateAction struct{}
type fieldAction struct{}
type indexAction struct{}
type tableAction struct{}
type groupAction struct{}

func (a *validateAction) Execute(p *Pipeline) error {
	return field.Validate(p.cfg.Q)
}

func (a *fieldAction) Execute(p *Pipeline) error {
	f, err := field.Build(p.cfg.Q)
	if err != nil {
		return err
	}
	s, t := f.Modulus()
	log.Debug("Built finite field", "q", f.Q(), "size", f.Size(), "modulus", []int{1, s, t}, "generator", f.Generator())
	p.res.Field = f
	return nil
}

func (a *indexAction) Execute(p *Pipeline) error {
	var (
		ix  *dlog.Index
		err error
	)
	if p.cfg.TableDir != "" {
		ix, err = dlog.LoadOrGenerate(p.cfg.TableDir, p.res.Field, p.cfg.Progress)
	} else {
		ix, err = dlog.Generate(p.res.Field, p.cfg.Progress)
	}
	if err != nil {
		return err
	}
	p.res.Index = ix
	return nil
}

func (a *tableAction) Execute(p *Pipeline) error {
	t, err := gauss.ComputeIndex(p.res.Index, gauss.Options{Workers: p.cfg.Workers, Progress: p.cfg.Progress})
	if err != nil {
		return err
	}
	p.res.Table = t
	log.Info("Computed Gauss sum table", "q", t.Q(), "rows", t.Rows(), "cols", t.Cols())
	return nil
}

func (a *groupAction) Execute(p *Pipeline) error {
	if !p.checkCondition(eTableCompleteId) {
		return errors.New("grouping requested before the table is complete")
	}
	p.res.Groups = grouping.Rows(p.res.Table)
	if p.res.Groups == nil {
		p.res.Groups = []grouping.Group{}
	}
	log.Info("Grouped identical rows", "q", p.res.Table.Q(), "groups", len(p.res.Groups))
	return nil
}
