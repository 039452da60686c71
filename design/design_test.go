package design_test

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/stimset/design"
	"github.com/katalvlaran/stimset/filter"
	"github.com/katalvlaran/stimset/levels"
	"github.com/katalvlaran/stimset/match"
	"github.com/katalvlaran/stimset/output"
	"github.com/katalvlaran/stimset/progress"
	"github.com/katalvlaran/stimset/seeded"
	"github.com/katalvlaran/stimset/split"
	"github.com/katalvlaran/stimset/table"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// items builds 60 rows whose Zipf values spread evenly over [1, 7).
func items(t *testing.T) *table.Table {
	t.Helper()
	header := []string{"string", "Zipf", "PoS", "AoA"}
	records := make([][]string, 60)
	for i := range records {
		pos := "noun"
		if i%3 == 0 {
			pos = "verb"
		}
		records[i] = []string{
			strings.Repeat("x", 3+i%5) + strconv.Itoa(i),
			strconv.FormatFloat(1+float64((i*37)%60)/10, 'g', -1, 64),
			pos,
			strconv.Itoa(2 + i%11),
		}
	}
	tb, err := table.FromRecords(header, records)
	require.NoError(t, err)
	return tb
}

func seed(v int64) *int64 { return &v }

func request() design.Request {
	req := design.NewRequest()
	req.Splits = []split.Spec{{
		Vars:   table.Names("Zipf"),
		Levels: []levels.Selector{levels.Range(1, 3.95), levels.Range(4, 6.95)},
	}}
	req.Controls = []match.Control{
		{Vars: table.Names("PoS")},
		{Vars: table.Names("AoA"), Tolerance: levels.Range(-2, 2)},
	}
	req.Seed = seed(7)
	return req
}

func TestRun_Generates(t *testing.T) {
	t.Parallel()
	tb := items(t)

	var events []string
	res, err := design.Run(context.Background(), tb, request(),
		design.WithReporter(progress.Func(func(e progress.Event) { events = append(events, e.String()) })))
	require.NoError(t, err)

	require.True(t, res.Generated)
	require.NotEmpty(t, res.RunID)
	require.Equal(t, int64(7), res.Seed)
	require.Equal(t, []string{"A1", "A2"}, res.Split.Labels())
	require.Equal(t, []int{30, 30}, res.Split.Sizes())
	require.Positive(t, res.Achieved)
	require.True(t, res.Exhausted)
	require.Empty(t, res.Warnings)

	require.Equal(t, []string{"item", "condition", "string", "Zipf"}, res.Frame.Header)
	require.Equal(t, 2*res.Achieved, res.Frame.Len())
	require.Len(t, res.Summary, 2)
	require.Equal(t, "AoA", res.Summary[0].Var)

	require.Equal(t, "Generating...", events[0])
	require.Equal(t, " - Done!", events[len(events)-1])
	require.Len(t, events, res.Achieved+2)

	// Same seed, same tuples; fresh run id.
	again, err := design.Run(context.Background(), tb, request())
	require.NoError(t, err)
	if diff := cmp.Diff(res.Tuples, again.Tuples); diff != "" {
		t.Fatalf("tuples differ (-first +second):\n%s", diff)
	}
	require.NotEqual(t, res.RunID, again.RunID)
}

func TestRun_SeedIsReported(t *testing.T) {
	t.Parallel()
	tb := items(t)
	req := request()
	req.Seed = nil

	first, err := design.Run(context.Background(), tb, req)
	require.NoError(t, err)

	req.Seed = seed(first.Seed)
	replay, err := design.Run(context.Background(), tb, req)
	require.NoError(t, err)
	require.Equal(t, first.Tuples, replay.Tuples)
}

func TestRun_ShortRequest(t *testing.T) {
	t.Parallel()
	req := request()
	req.N = 1000

	res, err := design.Run(context.Background(), items(t), req)
	require.NoError(t, err)
	require.Equal(t, 1000, res.Requested)
	require.Less(t, res.Achieved, 1000)
	require.Len(t, res.Messages, 1)
	require.Contains(t, res.Messages[0], "of 1000 requested")
}

func TestRun_NothingMatchedIsReported(t *testing.T) {
	t.Parallel()
	tb, err := table.New("string",
		[]string{"cat", "dog", "sun", "house", "table", "chair"},
		table.NumericColumn("Zipf", []float64{5.1, 4.0, 3.2, 5.0, 3.3, 1.0}),
	)
	require.NoError(t, err)

	req := design.NewRequest()
	req.Splits = []split.Spec{{
		Vars:   table.Names(table.LengthName),
		Levels: []levels.Selector{levels.Range(3, 4), levels.Range(5, 5)},
	}}
	req.Controls = []match.Control{{Vars: table.Names(table.LengthName), Tolerance: levels.Range(0, 0)}}
	req.Seed = seed(1)

	res, err := design.Run(context.Background(), tb, req)
	require.NoError(t, err)
	require.True(t, res.Generated)
	require.Zero(t, res.Achieved)
	require.True(t, res.Exhausted)
	require.Len(t, res.Messages, 1)
	require.Contains(t, res.Messages[0], "No tuples could be generated")

	// A finite request reports the shortfall instead.
	req.N = 5
	res, err = design.Run(context.Background(), tb, req)
	require.NoError(t, err)
	require.Equal(t, []string{"Only 0 of 5 requested tuples could be generated."}, res.Messages)
}

func TestRun_StagesUseIndependentStreams(t *testing.T) {
	t.Parallel()
	tb := items(t)
	req := request()
	req.Splits = append(req.Splits, split.RandomInto(2))

	res, err := design.Run(context.Background(), tb, req)
	require.NoError(t, err)

	sp, err := split.Apply(tb, res.View, req.Splits, seeded.Stream(7, seeded.SplitStream))
	require.NoError(t, err)
	if diff := cmp.Diff(sp.Cells, res.Split.Cells); diff != "" {
		t.Fatalf("cells differ (-want +got):\n%s", diff)
	}

	gen, err := match.Generate(context.Background(), tb, sp.Cells, req.Controls,
		seeded.Stream(7, seeded.GenerateStream), match.DefaultOptions())
	require.NoError(t, err)
	if diff := cmp.Diff(gen.Tuples, res.Tuples); diff != "" {
		t.Fatalf("tuples differ (-want +got):\n%s", diff)
	}
}

func TestRun_Incomplete(t *testing.T) {
	t.Parallel()
	tb := items(t)

	cases := []struct {
		name      string
		mutate    func(*design.Request)
		warnings  int
		messages  int
		header    []string
		rows      int
		generated bool
	}{
		{
			name: "no splits or controls",
			mutate: func(r *design.Request) {
				r.Splits, r.Controls = nil, nil
				r.Filters = []filter.Spec{{Var: table.Name(table.LengthName), Selector: levels.Range(3, 5)}}
			},
			messages: 1,
			header:   []string{"string", "Length"},
			rows:     14,
		},
		{
			name:     "controls without splits",
			mutate:   func(r *design.Request) { r.Splits = nil },
			warnings: 1,
			header:   []string{"string"},
			rows:     60,
		},
		{
			name:     "splits without controls",
			mutate:   func(r *design.Request) { r.Controls = nil },
			warnings: 1,
			header:   []string{"string", "condition", "Zipf"},
			rows:     60,
		},
		{
			name: "splits without controls, allowed",
			mutate: func(r *design.Request) {
				r.Controls = nil
				r.AllowUncontrolled = true
			},
			header:    []string{"item", "condition", "string", "Zipf"},
			rows:      60,
			generated: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			req := request()
			tc.mutate(&req)

			res, err := design.Run(context.Background(), tb, req, design.WithLogger(zap.New(core)))
			require.NoError(t, err)
			require.Len(t, res.Warnings, tc.warnings)
			require.Equal(t, tc.warnings, logs.Len())
			require.Len(t, res.Messages, tc.messages)
			require.Equal(t, tc.generated, res.Generated)
			require.Equal(t, tc.header, res.Frame.Header)
			require.Equal(t, tc.rows, res.Frame.Len())
			for _, w := range res.Warnings {
				require.Equal(t, design.ConfigurationWarning, w.Kind)
			}
		})
	}
}

func TestRun_SplitOnlyLabels(t *testing.T) {
	t.Parallel()
	tb := items(t)
	req := request()
	req.Controls = nil
	req.Splits[0].Levels = []levels.Selector{levels.Range(1, 2), levels.Range(6, 7)}

	res, err := design.Run(context.Background(), tb, req)
	require.NoError(t, err)
	counts := map[string]int{}
	for _, c := range res.Frame.Column("condition") {
		counts[c]++
	}
	require.Equal(t, map[string]int{"A1": 11, "A2": 10, "NA": 39}, counts)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()
	tb := items(t)

	_, err := design.Run(context.Background(), nil, request())
	require.ErrorIs(t, err, design.ErrNilTable)

	req := request()
	req.Filters = []filter.Spec{{Var: table.Name("Frequency"), Selector: levels.Range(1, 2)}}
	_, err = design.Run(context.Background(), tb, req)
	require.ErrorIs(t, err, table.ErrUnresolvedVariable)

	req = request()
	req.Null, req.NullCondition = match.Condition, "B1"
	_, err = design.Run(context.Background(), tb, req)
	require.ErrorIs(t, err, match.ErrUnknownCondition)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = design.Run(ctx, tb, request())
	require.ErrorIs(t, err, context.Canceled)

	require.Panics(t, func() { design.WithLogger(nil) })
	require.Panics(t, func() { design.WithReporter(nil) })
}

const yamlDesign = `
id: string
filters:
  - {var: Length, levels: "3:8"}
splits:
  - {var: Zipf, levels: "1:3.95 ~ 4:6.95"}
  - {random: 2}
controls: "PoS, AoA = -2:2"
n: 5
seed: 42
format: wide
include: all
match_null: A1_B2
strategy: greedy
allow_uncontrolled: true
`

func TestParseRequest(t *testing.T) {
	t.Parallel()

	got, err := design.ParseRequest([]byte(yamlDesign))
	require.NoError(t, err)

	want := design.NewRequest()
	want.Table = design.TableConfig{IDColumn: "string"}
	want.Filters = []filter.Spec{{Var: table.Name("Length"), Selector: levels.Range(3, 8)}}
	want.Splits = []split.Spec{
		{Vars: table.Names("Zipf"), Levels: []levels.Selector{levels.Range(1, 3.95), levels.Range(4, 6.95)}},
		split.RandomInto(2),
	}
	want.Controls = []match.Control{
		{Vars: table.Names("PoS")},
		{Vars: table.Names("AoA"), Tolerance: levels.Range(-2, 2)},
	}
	want.N = 5
	want.Seed = seed(42)
	want.Format = output.Wide
	want.Include = output.IncludeAll
	want.Null, want.NullCondition = match.Condition, "A1_B2"
	want.AllowUncontrolled = true

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}

	// The loaded request runs end to end.
	res, err := design.Run(context.Background(), items(t), got)
	require.NoError(t, err)
	require.Equal(t, []string{"A1_B1", "A1_B2", "A2_B1", "A2_B2"}, res.Split.Labels())
	for _, tp := range res.Tuples {
		require.Equal(t, 1, tp.Null)
	}
}

func TestParseRequest_Defaults(t *testing.T) {
	t.Parallel()

	got, err := design.ParseRequest(nil)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(design.NewRequest(), got))

	got, err = design.ParseRequest([]byte("n: all\nmatch_null: Balanced\nstrategy: max_matching\nordered: true\n"))
	require.NoError(t, err)
	require.Equal(t, match.All, got.N)
	require.Equal(t, match.Balanced, got.Null)
	require.Equal(t, match.StrategyMaxMatching, got.Strategy)
	require.True(t, got.Ordered)
}

func TestParseRequest_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"zero n", "n: 0", design.ErrBadRequest},
		{"word n", "n: lots", design.ErrBadRequest},
		{"random filter", "filters: [{var: Zipf, random: 2}]", design.ErrBadRequest},
		{"random with levels", "splits: [{var: Zipf, levels: '1:2', random: 2}]", design.ErrBadRequest},
		{"random of one", "splits: [{random: 1}]", design.ErrBadRequest},
		{"strategy", "strategy: exhaustive", design.ErrBadRequest},
		{"measure", "measures: [{column: Zipf}]", design.ErrBadRequest},
		{"levels", "splits: [{var: Zipf, levels: '1: ~ 2:3'}]", levels.ErrParse},
		{"controls", "controls: 'Zipf = a:b'", levels.ErrParse},
		{"format", "format: tall", output.ErrUnknownFormat},
		{"include", "include: some", output.ErrUnknownInclude},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := design.ParseRequest([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := design.ParseRequest([]byte("contrlos: Zipf"))
	require.Error(t, err)
}

func TestTableConfig(t *testing.T) {
	t.Parallel()
	req, err := design.ParseRequest([]byte(`
id: word
missing: ["-"]
categorical: [Code]
measures: [{column: zipf_uk, measure: Zipf, source: SUBTLEX_UK}]
`))
	require.NoError(t, err)

	tb, err := table.FromRecords(
		[]string{"Code", "word", "zipf_uk"},
		[][]string{{"1", "cat", "5.1"}, {"2", "dog", "-"}},
		req.Table.Options()...,
	)
	require.NoError(t, err)
	require.Equal(t, "word", tb.IDName())

	code, ok := tb.Column("Code")
	require.True(t, ok)
	require.Equal(t, table.Categorical, code.Kind)

	ref, err := tb.Resolve(table.Name("Zipf.SUBTLEX_UK"))
	require.NoError(t, err)
	require.True(t, tb.Missing(ref, 1))
}
