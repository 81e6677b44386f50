// Package pipeline drives one computation through its stages:
// validate q, build the field, index it, fill the table, group the rows.
//
// Each stage is a state with an action; an event moves the machine to the
// next state once its condition holds. The grouping state is reachable only
// after the table is complete.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/log"

	"github.com/jamwevan/MATH-440/dlog"
	"github.com/jamwevan/MATH-440/field"
	"github.com/jamwevan/MATH-440/gauss"
	"github.com/jamwevan/MATH-440/grouping"
)

// StateId identifies a stage.
type StateId int

// EventId identifies a transition between stages.
type EventId int

// ErrEventRejected is returned when no event of the current state can fire.
var ErrEventRejected = errors.New("event rejected")

// Action is the work done on entering a state.
type Action interface {
	Execute(p *Pipeline) error
}

// Events maps the events a state handles to their transitions.
type Events map[EventId]Event

// State binds a state with an action and a set of events it can handle.
type State struct {
	Action Action
	Events Events
}

type Event struct {
	Dest StateId
	Desc string
}

// States represents a mapping of states and their implementations.
type States map[StateId]State

// Config describes one computation.
type Config struct {
	Q int
	// Workers bounds parallel rows in the table stage; <= 0 means NumCPU.
	Workers int
	// TableDir caches discrete log tables when not empty.
	TableDir string
	// Progress receives progress bars when not nil.
	Progress io.Writer
}

// Result holds everything derived from q. It is immutable once returned.
type Result struct {
	Field  *field.Field
	Index  *dlog.Index
	Table  *gauss.Table
	Groups []grouping.Group

	Elapsed time.Duration
}

// Pipeline is the state machine of one computation.
type Pipeline struct {
	Previous StateId
	Current  StateId
	StateMap States

	// mutex ensures a pipeline runs at most once at a time.
	mutex sync.Mutex

	cfg Config
	res Result
}

// New returns a pipeline positioned at the initial state.
func New(cfg Config) *Pipeline {
	return &Pipeline{
		Previous: sInitId,
		Current:  sInitId,
		StateMap: stateMap,
		cfg:      cfg,
	}
}

// Run is New(cfg).Run().
func Run(cfg Config) (*Result, error) {
	return New(cfg).Run()
}

// checkCondition reports whether eventId may fire in the current state.
func (p *Pipeline) checkCondition(eventId EventId) bool {
	switch eventId {
	case eValidId:
		return field.Validate(p.cfg.Q) == nil
	case eBuiltId:
		return p.res.Field != nil
	case eIndexedId:
		return p.res.Index != nil
	case eTableCompleteId:
		t := p.res.Table
		return t != nil && t.Rows() == p.res.Field.Order() && t.Cols() == p.res.Field.Q()-1
	case eGroupedId:
		return p.res.Groups != nil
	default:
		return false
	}
}

// getNextState returns the destination of the first event that fires.
func (p *Pipeline) getNextState() (StateId, error) {
	state, ok := p.StateMap[p.Current]
	if !ok {
		return sInitId, ErrEventRejected
	}
	for _, id := range sortedEvents(state.Events) {
		if p.checkCondition(id) {
			return state.Events[id].Dest, nil
		}
	}
	return sInitId, ErrEventRejected
}

// Run executes every stage in order. A failing stage aborts the run and
// nothing partial is returned.
func (p *Pipeline) Run() (*Result, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	start := time.Now()
	for p.Current != sDoneId {
		state := p.StateMap[p.Current]
		if state.Action != nil {
			if err := state.Action.Execute(p); err != nil {
				return nil, err
			}
		}

		nextState, err := p.getNextState()
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", p.Current, err)
		}
		if _, ok := p.StateMap[nextState]; !ok {
			return nil, fmt.Errorf("stage %d: unknown destination %d", p.Current, nextState)
		}
		p.Previous = p.Current
		p.Current = nextState
		log.Trace("Pipeline transition", "from", p.Previous, "to", p.Current)
	}
	p.res.Elapsed = time.Since(start)
	res := p.res
	return &res, nil
}
