package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/csvgen/internal/table"
)

func TestState_FullWalk(t *testing.T) {
	s := NewState()
	assert.Equal(t, PhaseCounts, s.Phase())

	require.NoError(t, s.SetCounts(2, 1))
	assert.Equal(t, PhaseColumns, s.Phase())

	index, input, err := s.NextColumn()
	require.NoError(t, err)
	assert.Equal(t, 0, index)
	assert.True(t, input)
	require.NoError(t, s.AddColumn("Fruit", "Type", 2))

	require.NoError(t, s.AddColumn("Size", "Grade", 1))

	index, input, err = s.NextColumn()
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.False(t, input)
	require.NoError(t, s.AddColumn("Price", "EUR", 7))
	assert.Equal(t, PhaseVariants, s.Phase())

	column, err := s.NextVariantColumn()
	require.NoError(t, err)
	assert.Equal(t, "Type", column.Name)
	require.NoError(t, s.AddVariants([]string{"Apple", "Banana"}))

	column, err = s.NextVariantColumn()
	require.NoError(t, err)
	assert.Equal(t, "Grade", column.Name)
	require.NoError(t, s.AddVariants([]string{"L"}))
	assert.Equal(t, PhaseReady, s.Phase())

	result, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, []table.ColumnSpec{
		{Title: "Fruit", Name: "Type", VariantCount: 2},
		{Title: "Size", Name: "Grade", VariantCount: 1},
		{Title: "Price", Name: "EUR", VariantCount: 0},
	}, result.Columns)
	assert.Equal(t, []string{"Apple", "Banana", "L"}, result.Variants)
}

func TestState_SetCountsGuards(t *testing.T) {
	tests := []struct {
		name    string
		inputs  int
		outputs int
	}{
		{"zero inputs", 0, 1},
		{"zero outputs", 1, 0},
		{"negative inputs", -1, 1},
		{"too many inputs", MaxColumns + 1, 1},
		{"too many outputs", 1, MaxColumns + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			err := s.SetCounts(tt.inputs, tt.outputs)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, PhaseCounts, s.Phase(), "invalid counts must not advance")
		})
	}
}

func TestState_AddColumnGuards(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		instanceName string
		count        int
		wantErr      error
	}{
		{"empty title", "", "Type", 2, errTitleRequired},
		{"blank title", "   ", "Type", 2, errTitleRequired},
		{"empty name", "Fruit", "", 2, errNameRequired},
		{"zero variants", "Fruit", "Type", 0, errVariantCountInvalid},
		{"negative variants", "Fruit", "Type", -2, errVariantCountInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			require.NoError(t, s.SetCounts(1, 1))

			err := s.AddColumn(tt.title, tt.instanceName, tt.count)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidInput)

			index, _, err := s.NextColumn()
			require.NoError(t, err)
			assert.Equal(t, 0, index, "rejected column must not be recorded")
		})
	}
}

func TestState_OutputColumnIgnoresVariantCount(t *testing.T) {
	s := NewState()
	require.NoError(t, s.SetCounts(1, 1))
	require.NoError(t, s.AddColumn("Fruit", "Type", 1))
	require.NoError(t, s.AddColumn("Color", "Hue", 0))
	require.NoError(t, s.AddVariants([]string{"Apple"}))

	result, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, 0, result.Columns[1].VariantCount)
}

func TestState_AddVariantsGuards(t *testing.T) {
	newState := func(t *testing.T) *State {
		s := NewState()
		require.NoError(t, s.SetCounts(1, 1))
		require.NoError(t, s.AddColumn("Fruit", "Type", 2))
		require.NoError(t, s.AddColumn("Color", "Hue", 0))
		return s
	}

	t.Run("too few values", func(t *testing.T) {
		s := newState(t)
		err := s.AddVariants([]string{"Apple"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "expects 2, got 1")
		assert.Equal(t, PhaseVariants, s.Phase())
	})

	t.Run("empty value", func(t *testing.T) {
		s := newState(t)
		err := s.AddVariants([]string{"Apple", ""})
		assert.ErrorIs(t, err, errVariantRequired)
		assert.Equal(t, PhaseVariants, s.Phase())
	})
}

func TestState_WrongPhase(t *testing.T) {
	s := NewState()

	assert.ErrorIs(t, s.AddColumn("A", "a", 1), ErrWrongPhase)
	assert.ErrorIs(t, s.AddVariants([]string{"x"}), ErrWrongPhase)
	_, err := s.Result()
	assert.ErrorIs(t, err, ErrWrongPhase)

	require.NoError(t, s.SetCounts(1, 1))
	assert.ErrorIs(t, s.SetCounts(1, 1), ErrWrongPhase)
	_, err = s.NextVariantColumn()
	assert.ErrorIs(t, err, ErrWrongPhase)

	require.NoError(t, s.AddColumn("A", "a", 1))
	require.NoError(t, s.AddColumn("B", "b", 0))
	_, _, err = s.NextColumn()
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestState_ResultIsACopy(t *testing.T) {
	s := NewState()
	require.NoError(t, s.SetCounts(1, 1))
	require.NoError(t, s.AddColumn("A", "a", 1))
	require.NoError(t, s.AddColumn("B", "b", 0))
	require.NoError(t, s.AddVariants([]string{"x"}))

	first, err := s.Result()
	require.NoError(t, err)
	first.Variants[0] = "changed"
	first.Columns[0].Title = "changed"

	second, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, "x", second.Variants[0])
	assert.Equal(t, "A", second.Columns[0].Title)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "counts", PhaseCounts.String())
	assert.Equal(t, "columns", PhaseColumns.String())
	assert.Equal(t, "variants", PhaseVariants.String())
	assert.Equal(t, "ready", PhaseReady.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
}
