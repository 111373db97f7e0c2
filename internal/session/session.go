// Package session runs scripted experiments: a sequence of steps applied to
// named vessels that all share one recipe book.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/alchemy/pkg/alchemy"
	"github.com/mesh-intelligence/alchemy/pkg/types"
)

// Step operations.
const (
	OpAdd       = "add"
	OpPop       = "pop"
	OpExtract   = "extract"
	OpSummarize = "summarize"
	OpRecipe    = "recipe"
)

// Session errors.
var (
	ErrUnknownOp      = errors.New("unknown step operation")
	ErrVesselRequired = errors.New("step requires a vessel name")
	ErrKindMismatch   = errors.New("vessel already exists with a different kind")
)

// Step is one scripted operation. Kind is only needed the first time a
// vessel name is used. Element holds the element text for add (parsed with
// types.ParseElement) and the element name for pop. First, Second and
// Product are used by the recipe operation.
type Step struct {
	Vessel  string `json:"vessel,omitempty" yaml:"vessel,omitempty"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Op      string `json:"op" yaml:"op"`
	Element string `json:"element,omitempty" yaml:"element,omitempty"`
	First   string `json:"first,omitempty" yaml:"first,omitempty"`
	Second  string `json:"second,omitempty" yaml:"second,omitempty"`
	Product string `json:"product,omitempty" yaml:"product,omitempty"`
}

// StepResult is the outcome of one step. Found is false only for a pop
// that matched nothing.
type StepResult struct {
	Index    int              `json:"index"`
	Step     Step             `json:"step"`
	Found    bool             `json:"found"`
	Elements []*types.Element `json:"elements,omitempty"`
	Summary  string           `json:"summary,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// Report collects the results of a run. Vessels maps each vessel name to
// its summary after the last executed step.
type Report struct {
	SessionID string            `json:"session_id"`
	Steps     []StepResult      `json:"steps"`
	Vessels   map[string]string `json:"vessels"`
	Error     string            `json:"error,omitempty"`
}

// Session owns a set of named vessels sharing one recipe book.
type Session struct {
	ID      string
	book    types.RecipeBook
	vessels map[string]types.Vessel
	log     *zap.Logger
}

// New creates a session over book with a fresh UUID v7 identifier.
func New(book types.RecipeBook, log *zap.Logger) (*Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating session id: %w", err)
	}
	return &Session{
		ID:      id.String(),
		book:    book,
		vessels: make(map[string]types.Vessel),
		log:     log.With(zap.String("session", id.String())),
	}, nil
}

// Vessel returns the vessel called name, creating it with kind if it does
// not exist. An empty kind matches any existing vessel.
func (s *Session) Vessel(name, kind string) (types.Vessel, error) {
	if name == "" {
		return nil, ErrVesselRequired
	}
	if v, ok := s.vessels[name]; ok {
		if kind != "" && kind != v.Kind() {
			return nil, fmt.Errorf("%w: %s is a %s, not a %s", ErrKindMismatch, name, v.Kind(), kind)
		}
		return v, nil
	}

	v, err := alchemy.NewVessel(kind, s.book)
	if err != nil {
		return nil, fmt.Errorf("vessel %s: %w", name, err)
	}
	s.vessels[name] = v
	s.log.Debug("created vessel", zap.String("vessel", name), zap.String("kind", kind))
	return v, nil
}

// Apply executes one step. A failed step changes nothing.
func (s *Session) Apply(step Step) (StepResult, error) {
	res := StepResult{Step: step, Found: true}

	if step.Op == OpRecipe {
		if err := s.book.AddRecipe(step.First, step.Second, step.Product); err != nil {
			return res, fmt.Errorf("recipe %s + %s = %s: %w", step.First, step.Second, step.Product, err)
		}
		return res, nil
	}

	switch step.Op {
	case OpAdd, OpPop, OpExtract, OpSummarize:
	default:
		return res, fmt.Errorf("%w %q", ErrUnknownOp, step.Op)
	}

	// Parse before creating the vessel so a bad element leaves no trace.
	var elem *types.Element
	if step.Op == OpAdd {
		var err error
		if elem, err = types.ParseElement(step.Element); err != nil {
			return res, err
		}
	}

	v, err := s.Vessel(step.Vessel, step.Kind)
	if err != nil {
		return res, err
	}

	switch step.Op {
	case OpAdd:
		if err := v.Add(elem); err != nil {
			return res, fmt.Errorf("add %s to %s: %w", elem, step.Vessel, err)
		}
	case OpPop:
		e, ok := v.Pop(step.Element)
		res.Found = ok
		if ok {
			res.Elements = []*types.Element{e}
		}
	case OpExtract:
		res.Elements = v.Extract()
	case OpSummarize:
		res.Summary = v.Summarize()
	}
	return res, nil
}

// Run applies steps in order and stops at the first failing step.
func (s *Session) Run(steps []Step) Report {
	report := Report{SessionID: s.ID, Steps: make([]StepResult, 0, len(steps))}

	for i, step := range steps {
		res, err := s.Apply(step)
		res.Index = i
		if err != nil {
			res.Error = err.Error()
			report.Steps = append(report.Steps, res)
			report.Error = fmt.Sprintf("step %d: %s", i+1, err)
			s.log.Warn("step failed", zap.Int("step", i+1), zap.String("op", step.Op), zap.Error(err))
			break
		}
		report.Steps = append(report.Steps, res)
		s.log.Debug("step applied", zap.Int("step", i+1), zap.String("op", step.Op), zap.String("vessel", step.Vessel))
	}

	report.Vessels = make(map[string]string, len(s.vessels))
	for name, v := range s.vessels {
		report.Vessels[name] = v.Summarize()
	}
	return report
}
