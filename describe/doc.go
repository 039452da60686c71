// Package describe summarizes generated tuples per condition: for every
// numeric variable, the count, mean, standard deviation, median and range of
// the values each cell contributed. It lets a caller see at a glance that
// matched conditions agree on their controls.
package describe
