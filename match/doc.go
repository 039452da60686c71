// Package match builds matched stimulus tuples: one item per condition cell
// such that every control variable agrees within its tolerance, with no
// item used twice in a run.
//
// # Constraint
//
// A numeric control with tolerance [lo, hi] is checked on signed differences.
// In the Inclusive null mode every pair of cells (a before b in cell order)
// must satisfy v_b − v_a ∈ [lo, hi]. In the anchored modes (First, Balanced,
// Random, Condition) one cell of each tuple is the null and every other item
// must satisfy v_other − v_null ∈ [lo, hi]. A numeric control without a
// tolerance requires exact equality. Categorical controls require identical
// values. Rows missing any control value are never candidates.
//
// # Strategies
//
//   - StrategyGreedy (default): repeated anchored attempts. The anchor cell is
//     chosen per null mode; the anchor takes its next untried unused item and
//     each other cell, in cell order, the first unused candidate fitting every
//     item chosen so far. A failed attempt puts the anchor back and marks it
//     tried; a success clears all marks. The run stops when N tuples exist,
//     when every anchor has been tried since the last success (exhaustion), or
//     when the context is cancelled.
//   - StrategyMaxMatching: for exactly two cells, an exact maximum set of
//     disjoint pairs found with Dinic's max-flow on a unit-capacity network.
//
// Candidate order is a permutation drawn from the supplied generator (or row
// order when Options.Shuffle is false), so a fixed seed reproduces the same
// tuple sequence.
//
// Complexity (greedy): O(A · C · K · M) per success where A is anchors tried,
// C cells, K candidates per cell and M constraints.
package match
