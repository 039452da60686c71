// Package split partitions a (filtered) item view into labeled condition
// groups.
//
// Each Spec is one split dimension:
//
//   - a level split assigns a row to the unique level whose selector it
//     satisfies on every referenced variable; rows matching no level, more
//     than one level, or only an NA level are excluded from the dimension;
//   - a random split permutes the view with a seeded generator and deals the
//     rows into K groups whose sizes differ by at most one.
//
// Dimensions are labeled A, B, C, ... and levels 1, 2, 3, ..., so the first
// split yields conditions A1, A2. Several dimensions cross into cells
// ("A1_B2"), listed row-major with the first dimension varying slowest. A row
// belongs to a cell only when it is assigned in every dimension.
//
// Rows excluded from a split stay in the input view; Result.Label reports ""
// for them so split-only views can still show them.
package split
