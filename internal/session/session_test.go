package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/alchemy/pkg/alchemy"
	"github.com/mesh-intelligence/alchemy/pkg/types"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	book := alchemy.NewRecipeTable()
	require.NoError(t, book.AddRecipe("Water", "Wind", "Ice"))
	require.NoError(t, book.AddRecipe("Salt", "Water", "Brine"))
	s, err := New(book, nil)
	require.NoError(t, err)
	return s
}

func TestNewSessionID(t *testing.T) {
	s := newSession(t)
	id, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestSessionVessel(t *testing.T) {
	s := newSession(t)

	c, err := s.Vessel("c1", types.VesselCauldron)
	require.NoError(t, err)

	again, err := s.Vessel("c1", "")
	require.NoError(t, err)
	assert.Same(t, c, again)

	_, err = s.Vessel("c1", types.VesselPurifier)
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = s.Vessel("p1", "")
	assert.ErrorIs(t, err, types.ErrUnknownVessel)

	_, err = s.Vessel("", types.VesselStorage)
	assert.ErrorIs(t, err, ErrVesselRequired)
}

func TestSessionRun(t *testing.T) {
	s := newSession(t)
	report := s.Run([]Step{
		{Vessel: "c", Kind: types.VesselCauldron, Op: OpAdd, Element: "Salt@1"},
		{Vessel: "c", Op: OpAdd, Element: "Water"},
		{Vessel: "c", Op: OpSummarize},
		{Vessel: "p", Kind: types.VesselPurifier, Op: OpAdd, Element: "Ice"},
		{Vessel: "p", Op: OpPop, Element: "Water"},
		{Vessel: "p", Op: OpPop, Element: "Fire"},
		{Vessel: "c", Op: OpExtract},
	})

	require.Empty(t, report.Error)
	assert.Equal(t, s.ID, report.SessionID)
	require.Len(t, report.Steps, 7)

	assert.Equal(t, "Content:\n * Brine x 1\n * Salt x 1", report.Steps[2].Summary)

	popped := report.Steps[4]
	assert.True(t, popped.Found)
	require.Len(t, popped.Elements, 1)
	assert.Equal(t, "Water", popped.Elements[0].Name)

	assert.False(t, report.Steps[5].Found)
	assert.Empty(t, report.Steps[5].Elements)

	extracted := report.Steps[6].Elements
	assert.Equal(t, []string{"Salt", "Brine"}, types.ElementNames(extracted))
	assert.Equal(t, 0, extracted[0].Uses)

	assert.Equal(t, map[string]string{
		"c": "Content:\n Empty.",
		"p": "Content:\n * Wind x 1",
	}, report.Vessels)
}

func TestSessionRecipeStepIsShared(t *testing.T) {
	s := newSession(t)
	report := s.Run([]Step{
		{Vessel: "c", Kind: types.VesselCauldron, Op: OpAdd, Element: "Fire"},
		{Op: OpRecipe, First: "Fire", Second: "Earth", Product: "Lava"},
		{Vessel: "c", Op: OpAdd, Element: "Earth"},
		{Vessel: "p", Kind: types.VesselPurifier, Op: OpAdd, Element: "Lava"},
	})

	require.Empty(t, report.Error)
	assert.Equal(t, "Content:\n * Lava x 1", report.Vessels["c"])
	assert.Equal(t, "Content:\n * Earth x 1\n * Fire x 1", report.Vessels["p"])
}

func TestSessionRunStopsAtFirstFailure(t *testing.T) {
	tests := []struct {
		name    string
		step    Step
		wantErr error
	}{
		{"unknown op", Step{Vessel: "c", Op: "stir"}, ErrUnknownOp},
		{"overlapping recipe", Step{Op: OpRecipe, First: "Wind", Second: "Water", Product: "Snow"}, types.ErrRecipeOverlap},
		{"duplicate recipe names", Step{Op: OpRecipe, First: "Fire", Second: "Fire", Product: "Blaze"}, types.ErrDuplicateNames},
		{"negative catalyst", Step{Vessel: "c", Op: OpAdd, Element: "Salt@-1"}, types.ErrInvalidUses},
		{"kind mismatch", Step{Vessel: "c", Kind: types.VesselStorage, Op: OpSummarize}, ErrKindMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t)
			report := s.Run([]Step{
				{Vessel: "c", Kind: types.VesselCauldron, Op: OpAdd, Element: "Water"},
				tt.step,
				{Vessel: "c", Op: OpAdd, Element: "Wind"},
			})

			require.NotEmpty(t, report.Error)
			require.Len(t, report.Steps, 2, "steps after the failure are not run")
			assert.NotEmpty(t, report.Steps[1].Error)
			assert.Equal(t, "Content:\n * Water x 1", report.Vessels["c"])

			_, err := s.Apply(tt.step)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSessionFailedAddCreatesNoVessel(t *testing.T) {
	s := newSession(t)
	_, err := s.Apply(Step{Vessel: "x", Kind: types.VesselStorage, Op: OpAdd, Element: "Salt@-3"})
	require.ErrorIs(t, err, types.ErrInvalidUses)

	report := s.Run(nil)
	assert.Empty(t, report.Vessels)
}

func TestReadScript(t *testing.T) {
	dir := t.TempDir()

	t.Run("jsonl", func(t *testing.T) {
		path := filepath.Join(dir, "script.jsonl")
		require.NoError(t, os.WriteFile(path, []byte(`{"vessel":"c","kind":"cauldron","op":"add","element":"Water"}

{"vessel":"c","op":"extract"}
`), 0o644))

		steps, err := ReadScript(path)
		require.NoError(t, err)
		assert.Equal(t, []Step{
			{Vessel: "c", Kind: types.VesselCauldron, Op: OpAdd, Element: "Water"},
			{Vessel: "c", Op: OpExtract},
		}, steps)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "script.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`- op: recipe
  first: Fire
  second: Earth
  product: Lava
- vessel: p
  kind: purifier
  op: add
  element: Lava
`), 0o644))

		steps, err := ReadScript(path)
		require.NoError(t, err)
		require.Len(t, steps, 2)
		assert.Equal(t, "Lava", steps[0].Product)
		assert.Equal(t, types.VesselPurifier, steps[1].Kind)
	})

	t.Run("malformed jsonl line is an error", func(t *testing.T) {
		path := filepath.Join(dir, "bad.jsonl")
		require.NoError(t, os.WriteFile(path, []byte("{\"op\":\"add\"}\nnope\n"), 0o644))
		_, err := ReadScript(path)
		assert.ErrorContains(t, err, "line 2")
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := ReadScript(filepath.Join(dir, "script.txt"))
		assert.ErrorIs(t, err, ErrScriptFormatUnknown)
	})
}
