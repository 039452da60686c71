// SPDX-License-Identifier: MIT
// Package design: YAML requests.

package design

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/stimset/filter"
	"github.com/katalvlaran/stimset/levels"
	"github.com/katalvlaran/stimset/match"
	"github.com/katalvlaran/stimset/output"
	"github.com/katalvlaran/stimset/split"
	"gopkg.in/yaml.v3"
)

// document mirrors the YAML layout.
type document struct {
	ID          string       `yaml:"id"`
	Missing     []string     `yaml:"missing"`
	Categorical []string     `yaml:"categorical"`
	Measures    []measureDoc `yaml:"measures"`
	Filters     []levelDoc   `yaml:"filters"`
	Splits      []levelDoc   `yaml:"splits"`
	Controls    string       `yaml:"controls"`
	N           count        `yaml:"n"`
	Seed        *int64       `yaml:"seed"`
	Format      string       `yaml:"format"`
	Include     string       `yaml:"include"`
	MatchNull   string       `yaml:"match_null"`
	Strategy    string       `yaml:"strategy"`
	Ordered     bool         `yaml:"ordered"`
	Uncontrol   bool         `yaml:"allow_uncontrolled"`
}

type measureDoc struct {
	Column  string `yaml:"column"`
	Measure string `yaml:"measure"`
	Source  string `yaml:"source"`
}

// levelDoc is a filter or split entry; Random applies to splits only.
type levelDoc struct {
	Var    string `yaml:"var"`
	Levels string `yaml:"levels"`
	Random int    `yaml:"random"`
}

// count accepts a positive integer or "all"; absent means all.
type count struct {
	n   int
	set bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *count) UnmarshalYAML(node *yaml.Node) error {
	if strings.EqualFold(strings.TrimSpace(node.Value), "all") {
		c.n, c.set = match.All, true
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(node.Value))
	if err != nil || n < 1 {
		return fmt.Errorf("%w: n must be a positive integer or \"all\", got %q", ErrBadRequest, node.Value)
	}
	c.n, c.set = n, true
	return nil
}

// ReadRequest loads a YAML design from path.
func ReadRequest(path string) (Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return Request{}, fmt.Errorf("design: ReadRequest: %w", err)
	}
	defer f.Close()
	return LoadRequest(f)
}

// ParseRequest parses a YAML design held in memory.
func ParseRequest(data []byte) (Request, error) {
	return LoadRequest(bytes.NewReader(data))
}

// LoadRequest decodes a YAML design. Unknown keys are rejected. Level,
// selector and control expressions are parsed with package levels, so
// malformed ones surface as *levels.ParseError.
//
// Errors: ErrBadRequest, levels.ErrParse, output.ErrUnknownFormat,
// output.ErrUnknownInclude, or YAML syntax errors.
func LoadRequest(r io.Reader) (Request, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Request{}, fmt.Errorf("design: LoadRequest: %w", err)
	}
	req, err := doc.request()
	if err != nil {
		return Request{}, fmt.Errorf("design: LoadRequest: %w", err)
	}
	return req, nil
}

func (d document) request() (Request, error) {
	var (
		req = NewRequest()
		err error
	)

	req.Table = TableConfig{IDColumn: d.ID, Missing: d.Missing, Categorical: d.Categorical}
	for i, m := range d.Measures {
		if m.Column == "" || m.Measure == "" {
			return Request{}, fmt.Errorf("%w: measure %d needs column and measure", ErrBadRequest, i)
		}
		req.Table.Measures = append(req.Table.Measures, Measure(m))
	}

	for i, f := range d.Filters {
		if f.Random != 0 {
			return Request{}, fmt.Errorf("%w: filter %d: random applies to splits only", ErrBadRequest, i)
		}
		vars, err := levels.ParseVars(f.Var)
		if err != nil {
			return Request{}, fmt.Errorf("filter %d: %w", i, err)
		}
		sel, err := levels.ParseSelector(f.Levels)
		if err != nil {
			return Request{}, fmt.Errorf("filter %d: %w", i, err)
		}
		for _, v := range vars {
			req.Filters = append(req.Filters, filter.Spec{Var: v, Selector: sel})
		}
	}

	for i, s := range d.Splits {
		switch {
		case s.Random != 0 && (s.Var != "" || s.Levels != ""):
			return Request{}, fmt.Errorf("%w: split %d: random excludes var and levels", ErrBadRequest, i)
		case s.Random != 0:
			if s.Random < 2 {
				return Request{}, fmt.Errorf("%w: split %d: random needs at least 2 levels", ErrBadRequest, i)
			}
			req.Splits = append(req.Splits, split.RandomInto(s.Random))
		default:
			spec, err := levels.ParseLevels(s.Var, s.Levels)
			if err != nil {
				return Request{}, fmt.Errorf("split %d: %w", i, err)
			}
			req.Splits = append(req.Splits, split.FromLevels(spec))
		}
	}

	terms, err := levels.ParseEllipsis(d.Controls)
	if err != nil {
		return Request{}, fmt.Errorf("controls: %w", err)
	}
	if len(terms) > 0 {
		req.Controls = match.FromTerms(terms)
	}

	if d.N.set {
		req.N = d.N.n
	}
	req.Seed = d.Seed
	if d.Format != "" {
		if req.Format, err = output.ParseFormat(d.Format); err != nil {
			return Request{}, err
		}
	}
	if d.Include != "" {
		if req.Include, err = output.ParseInclude(d.Include); err != nil {
			return Request{}, err
		}
	}
	if d.MatchNull != "" {
		req.Null, req.NullCondition = ParseNull(d.MatchNull)
	}
	if d.Strategy != "" {
		if req.Strategy, err = ParseStrategy(d.Strategy); err != nil {
			return Request{}, err
		}
	}
	req.Ordered = d.Ordered
	req.AllowUncontrolled = d.Uncontrol
	return req, nil
}

// ParseNull maps "inclusive", "first", "balanced" or "random" (any case) to
// a mode; any other value names the null condition, e.g. "A2".
func ParseNull(s string) (match.NullMode, string) {
	s = strings.TrimSpace(s)
	for _, m := range []match.NullMode{match.Inclusive, match.First, match.Balanced, match.Random} {
		if strings.EqualFold(s, m.String()) {
			return m, ""
		}
	}
	return match.Condition, s
}

// ParseStrategy maps "greedy" or "max_matching" to a Strategy.
func ParseStrategy(s string) (match.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case match.StrategyGreedy.String():
		return match.StrategyGreedy, nil
	case match.StrategyMaxMatching.String():
		return match.StrategyMaxMatching, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrBadRequest, s)
}
