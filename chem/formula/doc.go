// Package formula finds elemental compositions whose mass falls into a
// window.
//
// [Search] enumerates count vectors lazily by branch and bound: elements
// are fixed one at a time from their minimum count upwards and a branch is
// abandoned as soon as its mass exceeds the upper bound. Results come in
// lexicographic order of the counts. [Compositions] collects the first
// results into a buffer.
//
// A [Formulator] wraps the search for the common use: turn a measured m/z
// and charge into a neutral mass window, order the allowed elements
// heaviest first, cap their counts by mass and render formulas such as
// "C6H12O6".
package formula
