// Package design runs the whole stimulus-generation pipeline on an item
// table: filter, split, matched generation, formatting and a per-condition
// summary.
//
// A Request is either built in Go or loaded from YAML with ParseRequest or
// ReadRequest:
//
//	id: string
//	filters:  [{var: Length, levels: "3:8"}]
//	splits:   [{var: Zipf.SUBTLEX_UK, levels: "1:2 ~ 4:7"}, {random: 2}]
//	controls: "Length, PoS.SUBTLEX_UK, BG = -0.5:0.5"
//	n: all
//	seed: 42
//	format: long
//	include: used
//	match_null: inclusive
//	strategy: greedy
//
// Run never fails for a merely incomplete design. Without splits or
// controls it returns the filtered table with a message. With controls but
// no splits, or splits but no controls, it also returns a
// ConfigurationWarning. Generation stopping short of the requested count is
// reported through Result.Exhausted, not an error.
//
// Each run gets a random RunID and a Seed. When the request has no seed,
// one is drawn and reported so the run can be repeated.
package design
