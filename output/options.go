// SPDX-License-Identifier: MIT
// Package output: format and include selectors.

package output

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stimset/table"
)

// Format selects the frame layout.
type Format uint8

const (
	// Long writes one record per item.
	Long Format = iota
	// Wide writes one record per tuple.
	Wide
)

// String returns "long", "wide" or "invalid".
func (f Format) String() string {
	switch f {
	case Long:
		return "long"
	case Wide:
		return "wide"
	default:
		return "invalid"
	}
}

// ParseFormat maps "long" or "wide" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long":
		return Long, nil
	case "wide":
		return Wide, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Include selects the table columns copied into a frame.
type Include uint8

const (
	// IncludeUsed copies the identifier plus filter and split variables.
	IncludeUsed Include = iota
	// IncludeAll copies every table column.
	IncludeAll
	// IncludeID copies only the identifier.
	IncludeID
)

// String returns "used", "all", "id" or "invalid".
func (i Include) String() string {
	switch i {
	case IncludeUsed:
		return "used"
	case IncludeAll:
		return "all"
	case IncludeID:
		return "id"
	default:
		return "invalid"
	}
}

// ParseInclude maps "used", "all" or "id" (any case; "none" is an alias of
// "id") to an Include.
func ParseInclude(s string) (Include, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "used":
		return IncludeUsed, nil
	case "all":
		return IncludeAll, nil
	case "id", "none":
		return IncludeID, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInclude, s)
}

// Config drives frame construction. Used lists the filter and split
// variables consulted by IncludeUsed.
type Config struct {
	Format  Format
	Include Include
	Used    table.Vars
}

// columns resolves the refs copied under cfg.Include, de-duplicated by
// column name.
func (cfg Config) columns(t *table.Table) ([]table.Ref, error) {
	switch cfg.Include {
	case IncludeAll:
		return t.Refs(), nil
	case IncludeID:
		return nil, nil
	}

	refs, err := t.ResolveAll(cfg.Used)
	if err != nil {
		return nil, err
	}
	var (
		out  = make([]table.Ref, 0, len(refs))
		seen = map[string]struct{}{}
	)
	for _, r := range refs {
		if _, dup := seen[r.Column]; dup {
			continue
		}
		seen[r.Column] = struct{}{}
		out = append(out, r)
	}
	return out, nil
}
