package filter_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/stimset/filter"
	"github.com/katalvlaran/stimset/levels"
	"github.com/katalvlaran/stimset/table"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New("string",
		[]string{"cat", "horse", "run", "apple", "go", "table"},
		table.NumericColumn("Zipf", []float64{5.1, 4.2, 5.6, math.NaN(), 6.3, 4.9}),
		table.CategoricalColumn("PoS", []string{"noun", "noun", "verb", "noun", "verb", ""}),
	)
	require.NoError(t, err)
	return tb
}

func TestApply_Intersection(t *testing.T) {
	t.Parallel()
	tb := fixture(t)

	got, err := filter.Apply(tb, tb.All(), []filter.Spec{
		{Var: table.Name("Zipf"), Selector: levels.Range(6, 4.5)},
		{Var: table.Name("PoS"), Selector: levels.Categories("noun", "verb")},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "run"}, got.IDs(tb))
}

func TestApply_LengthAndUnconstrained(t *testing.T) {
	t.Parallel()
	tb := fixture(t)

	got, err := filter.Apply(tb, tb.All(), []filter.Spec{
		{Var: table.Name(table.LengthName), Selector: levels.Range(3, 4)},
		{Var: table.Name("PoS"), Selector: levels.NA()},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "run"}, got.IDs(tb))

	// Category sets compare exact text on numeric columns.
	got, err = filter.Apply(tb, tb.All(), []filter.Spec{
		{Var: table.Name("Zipf"), Selector: levels.Categories("4.2")},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"horse"}, got.IDs(tb))
}

func TestApply_Errors(t *testing.T) {
	t.Parallel()
	tb := fixture(t)

	_, err := filter.Apply(tb, tb.All(), []filter.Spec{{Var: table.Name("Freq"), Selector: levels.Range(1, 2)}})
	require.ErrorIs(t, err, table.ErrUnresolvedVariable)

	_, err = filter.Apply(tb, tb.All(), []filter.Spec{{Var: table.Name("PoS"), Selector: levels.Range(1, 2)}})
	require.ErrorIs(t, err, filter.ErrSelectorKind)
}

// TestApply_Property checks intersection correctness on random data: every
// kept row satisfies every predicate and every dropped row violates one.
func TestApply_Property(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	const n = 200
	var (
		ids  = make([]string, n)
		nums = make([]float64, n)
		cats = make([]string, n)
	)
	for i := 0; i < n; i++ {
		ids[i] = "w" + strconv.Itoa(i)
		nums[i] = rng.Float64() * 10
		cats[i] = []string{"a", "b", "c", ""}[rng.Intn(4)]
	}
	tb, err := table.New("string", ids,
		table.NumericColumn("x", nums),
		table.CategoricalColumn("k", cats))
	require.NoError(t, err)

	specs := []filter.Spec{
		{Var: table.Name("x"), Selector: levels.Range(2, 7)},
		{Var: table.Name("k"), Selector: levels.Categories("a", "c")},
	}
	kept, err := filter.Apply(tb, tb.All(), specs)
	require.NoError(t, err)

	in := make(map[int]bool, len(kept))
	for _, r := range kept {
		in[r] = true
	}
	for r := 0; r < n; r++ {
		first, err := filter.Explain(tb, r, specs)
		require.NoError(t, err)
		if in[r] {
			require.Equal(t, -1, first, "kept row %d violates spec %d", r, first)
		} else {
			require.GreaterOrEqual(t, first, 0, "dropped row %d satisfies every spec", r)
		}
	}
}

func TestVars(t *testing.T) {
	t.Parallel()

	vs := filter.Vars([]filter.Spec{
		{Var: table.Name("Zipf")},
		{Var: table.Name("PoS")},
		{Var: table.Name("Zipf")},
	})
	require.Equal(t, table.Names("Zipf", "PoS"), vs)
}
