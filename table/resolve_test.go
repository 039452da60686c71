package table_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/stimset/table"
	"github.com/stretchr/testify/require"
)

func TestResolve_Precedence(t *testing.T) {
	t.Parallel()
	tb := words(t)

	ref, err := tb.Resolve(table.Name("Zipf"))
	require.NoError(t, err)
	require.Equal(t, "Zipf", ref.Column)
	require.Equal(t, table.Numeric, ref.Kind)

	ref, err = tb.Resolve(table.MeasureOf("Zipf", "SUBTLEX_UK"))
	require.NoError(t, err)
	require.Equal(t, "Zipf", ref.Column)

	ref, err = tb.Resolve(table.MeasureOf("Zipf", ""))
	require.NoError(t, err)
	require.Equal(t, "Zipf", ref.Column)

	// Length is computed from the identifier when no literal column exists.
	ref, err = tb.Resolve(table.Name(table.LengthName))
	require.NoError(t, err)
	require.True(t, ref.Computed())
	require.Equal(t, 5.0, tb.Number(ref, 1))
	require.Equal(t, "5", tb.Text(ref, 1))
}

func TestResolve_LiteralLengthWins(t *testing.T) {
	t.Parallel()

	tb, err := table.New("string", []string{"ab"}, table.NumericColumn("Length", []float64{7}))
	require.NoError(t, err)
	ref, err := tb.Resolve(table.Name("Length"))
	require.NoError(t, err)
	require.False(t, ref.Computed())
	require.Equal(t, 7.0, tb.Number(ref, 0))
}

func TestResolve_Unresolved(t *testing.T) {
	t.Parallel()
	tb := words(t)

	_, err := tb.Resolve(table.Name("Zpf"))
	require.ErrorIs(t, err, table.ErrUnresolvedVariable)
	require.NotErrorIs(t, err, table.ErrAmbiguousVariable)

	var uv *table.UnresolvedVariableError
	require.True(t, errors.As(err, &uv))
	require.Contains(t, uv.Suggestions, "Zipf")
	require.Contains(t, err.Error(), "did you mean")

	_, err = tb.Resolve(table.Name(table.RandomName))
	require.ErrorIs(t, err, table.ErrUnresolvedVariable)

	_, err = tb.Resolve(table.MeasureOf("Zipf", "Glasgow"))
	require.ErrorIs(t, err, table.ErrUnresolvedVariable)
}

func TestResolve_Ambiguous(t *testing.T) {
	t.Parallel()

	tb, err := table.New("string", []string{"a"},
		table.NumericColumn("AoA.Kuperman", []float64{5}).WithMeasure("AoA", "Kuperman"),
		table.NumericColumn("AoA.Glasgow", []float64{4}).WithMeasure("AoA", "Glasgow"),
	)
	require.NoError(t, err)

	_, err = tb.Resolve(table.MeasureOf("AoA", ""))
	require.ErrorIs(t, err, table.ErrAmbiguousVariable)
	require.ErrorIs(t, err, table.ErrUnresolvedVariable)

	var uv *table.UnresolvedVariableError
	require.True(t, errors.As(err, &uv))
	require.Equal(t, []string{"AoA.Kuperman", "AoA.Glasgow"}, uv.Matches)

	_, err = tb.Resolve(table.Name("AoA"))
	require.ErrorIs(t, err, table.ErrAmbiguousVariable)

	ref, err := tb.Resolve(table.MeasureOf("AoA", "Glasgow"))
	require.NoError(t, err)
	require.Equal(t, "AoA.Glasgow", ref.Column)
}

func TestResolveAll(t *testing.T) {
	t.Parallel()
	tb := words(t)

	refs, err := tb.ResolveAll(table.Names("PoS", "Zipf"))
	require.NoError(t, err)
	require.Len(t, refs, 2)
	require.Equal(t, "PoS", refs[0].Column)

	_, err = tb.ResolveAll(table.Names("PoS", "nope"))
	require.ErrorIs(t, err, table.ErrUnresolvedVariable)
	require.Equal(t, "c(PoS, nope)", table.Names("PoS", "nope").String())
}

func TestResolve_DottedMeasureSource(t *testing.T) {
	t.Parallel()

	tb, err := table.New("string", []string{"a"},
		table.NumericColumn("zipf_uk", []float64{5}).WithMeasure("Zipf", "SUBTLEX_UK"),
		table.NumericColumn("zipf_us", []float64{4}).WithMeasure("Zipf", "SUBTLEX_US"),
	)
	require.NoError(t, err)

	ref, err := tb.Resolve(table.Name("Zipf.SUBTLEX_US"))
	require.NoError(t, err)
	require.Equal(t, "zipf_us", ref.Column)

	_, err = tb.Resolve(table.Name("Zipf"))
	require.ErrorIs(t, err, table.ErrAmbiguousVariable)

	_, err = tb.Resolve(table.Name("Zipf.Glasgow"))
	require.ErrorIs(t, err, table.ErrUnresolvedVariable)
}

func TestResolve_DottedMeasureSourceAmbiguous(t *testing.T) {
	t.Parallel()

	tb, err := table.New("string", []string{"a"},
		table.NumericColumn("z1", []float64{5}).WithMeasure("Zipf", "UK"),
		table.NumericColumn("z2", []float64{4}).WithMeasure("Zipf", "UK"),
	)
	require.NoError(t, err)

	_, err = tb.Resolve(table.Name("Zipf.UK"))
	require.ErrorIs(t, err, table.ErrAmbiguousVariable)

	var uerr *table.UnresolvedVariableError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, []string{"z1", "z2"}, uerr.Matches)
}
