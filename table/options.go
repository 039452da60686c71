// SPDX-License-Identifier: MIT
// Package table: functional options for FromRecords.
//
// Option constructors validate and panic on meaningless inputs; FromRecords
// itself only returns errors.

package table

// Option customizes FromRecords.
type Option func(*recordsConfig)

type recordsConfig struct {
	idName      string
	missing     map[string]struct{}
	categorical map[string]struct{}
	measures    map[string][2]string
}

// defaultMissing are the textual markers read as missing values.
var defaultMissing = []string{"", "NA", "NaN"}

func newRecordsConfig(opts ...Option) recordsConfig {
	cfg := recordsConfig{
		idName:      DefaultIDName,
		missing:     make(map[string]struct{}, len(defaultMissing)),
		categorical: map[string]struct{}{},
		measures:    map[string][2]string{},
	}
	for _, m := range defaultMissing {
		cfg.missing[m] = struct{}{}
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIDColumn names the identifier column. Panics on "".
func WithIDColumn(name string) Option {
	if name == "" {
		panic("table: WithIDColumn(\"\")")
	}
	return func(c *recordsConfig) { c.idName = name }
}

// WithMissing adds textual markers read as missing values.
func WithMissing(tokens ...string) Option {
	return func(c *recordsConfig) {
		for _, tok := range tokens {
			c.missing[tok] = struct{}{}
		}
	}
}

// WithCategorical forces the named columns to be categorical even when
// every value parses as a number (e.g. numeric codes).
func WithCategorical(names ...string) Option {
	return func(c *recordsConfig) {
		for _, n := range names {
			c.categorical[n] = struct{}{}
		}
	}
}

// WithMeasure tags column with measure/source metadata. Panics on an empty
// column or measure.
func WithMeasure(column, measure, source string) Option {
	if column == "" || measure == "" {
		panic("table: WithMeasure requires column and measure")
	}
	return func(c *recordsConfig) { c.measures[column] = [2]string{measure, source} }
}
