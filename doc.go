// Package stimset generates matched stimulus sets for psycholinguistic
// experiments: groups of items (words, usually) that differ on the variables
// under study and agree, within declared tolerances, on everything else.
//
// A run takes an item table and a design:
//
//	filters      keep rows whose values fall inside ranges or category sets
//	splits       partition the rows into conditions (A1, A2, … crossed as A1_B2)
//	controls     variables every tuple must match on, e.g. "Length, Zipf = -0.2:0.2"
//
// and returns tuples holding one item per condition, never reusing an item.
//
// Subpackages, bottom-up:
//
//	table/       immutable item table, variable resolution (name, Length, measure.source)
//	levels/      tokenizer and grammars for level lists and control lists
//	filter/      filter stage
//	split/       level and seeded random splits, condition cells
//	seeded/      explicit seeded generators and derived streams
//	match/       greedy matched generation, exact two-cell pairing, validation
//	progress/    fire-and-forget progress reporting
//	output/      wide/long frames and CSV export
//	describe/    per-condition control statistics
//	design/      YAML designs and the end-to-end Run
//	cmd/stimset  command-line front end
//
// Quick start:
//
//	req, _ := design.ReadRequest("design.yaml")
//	res, err := design.Run(ctx, tb, req)
//	_ = res.Frame.WriteCSV(os.Stdout)
package stimset
