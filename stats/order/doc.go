// Package order provides order statistics over float64 slices.
//
// [Select] and [MedianInPlace] run an expected-linear-time quickselect
// (median-of-three pivot, Hoare partitioning) and reorder their argument.
// [Median] works on a private copy and is the safe default.
//
// For even-length input the median is the lower of the two middle values
// of the sorted order (index (n-1)/2), not their average.
package order
