package describe_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/stimset/describe"
	"github.com/katalvlaran/stimset/match"
	"github.com/katalvlaran/stimset/table"
	"github.com/stretchr/testify/require"
)

func TestTuples(t *testing.T) {
	t.Parallel()
	tb, err := table.New("string",
		[]string{"a", "bb", "ccc", "dddd", "e", "ff"},
		table.NumericColumn("Zipf", []float64{1, 2, 3, 5, math.NaN(), 4}),
		table.CategoricalColumn("PoS", []string{"n", "n", "v", "v", "n", "v"}),
	)
	require.NoError(t, err)
	tuples := []match.Tuple{
		{Rows: []int{0, 1}, Null: -1},
		{Rows: []int{2, 3}, Null: -1},
		{Rows: []int{4, 5}, Null: -1},
	}

	sum, err := describe.Tuples(tb, []string{"A1", "A2"}, tuples, table.Names("Zipf", "PoS", table.LengthName, "Zipf"))
	require.NoError(t, err)
	require.Len(t, sum, 4)

	a1 := sum[0]
	require.Equal(t, "A1", a1.Cell)
	require.Equal(t, "Zipf", a1.Var)
	require.Equal(t, 2, a1.N) // NaN ignored
	require.InDelta(t, 2, a1.Mean, 1e-12)
	require.InDelta(t, math.Sqrt(2), a1.SD, 1e-12)
	require.Equal(t, 1.0, a1.Min)
	require.Equal(t, 3.0, a1.Max)

	a2len := sum[3]
	require.Equal(t, "A2", a2len.Cell)
	require.Equal(t, table.LengthName, a2len.Var)
	require.Equal(t, 3, a2len.N)
	require.InDelta(t, 8.0/3, a2len.Mean, 1e-12)
	require.Equal(t, 2.0, a2len.Median)

	f := sum.Frame()
	require.Equal(t, 4, f.Len())
	require.Equal(t, []string{"A1", "Zipf", "2", "2", "1.414", "1", "1", "3"}, f.Records[0])
}

func TestTuples_EmptyAndErrors(t *testing.T) {
	t.Parallel()
	tb, err := table.New("string", []string{"a", "b"}, table.NumericColumn("Zipf", []float64{1, 2}))
	require.NoError(t, err)

	sum, err := describe.Tuples(tb, []string{"A1"}, nil, table.Names("Zipf"))
	require.NoError(t, err)
	require.Len(t, sum, 1)
	require.Equal(t, 0, sum[0].N)
	require.True(t, math.IsNaN(sum[0].Mean))
	require.Equal(t, "NA", sum.Frame().Records[0][3])

	one, err := describe.Tuples(tb, []string{"A1"}, []match.Tuple{{Rows: []int{1}, Null: -1}}, table.Names("Zipf"))
	require.NoError(t, err)
	require.Equal(t, 2.0, one[0].Mean)
	require.True(t, math.IsNaN(one[0].SD))

	_, err = describe.Tuples(tb, []string{"A1", "A2"}, []match.Tuple{{Rows: []int{0}, Null: -1}}, table.Names("Zipf"))
	require.ErrorIs(t, err, describe.ErrTupleArity)

	_, err = describe.Tuples(tb, []string{"A1"}, nil, table.Names("AoA"))
	require.ErrorIs(t, err, table.ErrUnresolvedVariable)
}
