// Package levels translates the compact, user-facing notation for levels and
// tolerances into typed selectors.
//
// Two grammars are provided, both implemented by an explicit tokenizer and a
// small recursive parser (user text is never evaluated):
//
//   - Level expressions (ParseLevels, ParseSelector):
//
//     1:3 ~ 4:6           two numeric ranges
//     c(1, 3) ~ c(4, 6)   the same, written as bound pairs
//     "noun" ~ c(verb, adj)
//     NA ~ 5:7            an intentionally empty level
//
//     Levels are separated by "~". A level list is numeric when every level
//     is a range; when only some levels contain ":" it is still numeric and
//     the other levels become Unconstrained. Otherwise every level is a
//     category set. Bounds keep the caller's order.
//
//   - Ellipsis expressions (ParseEllipsis):
//
//     Length, Zipf.SUBTLEX_UK = -0.2:0.2, c(AoA, Fam) = 0.5
//
//     A comma-separated list of "variable[=tolerance]" items; the output
//     keeps input order. A single number x as tolerance means -|x|:|x|.
//
// Variables are written as bare identifiers (dots and underscores allowed),
// quoted strings, or c(a, b) for a multi-variable reference.
//
// Every failure is a *ParseError carrying the offending token and its byte
// offset; errors.Is(err, ErrParse) holds for all of them.
package levels
