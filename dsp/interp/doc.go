// Package interp provides the two-point linear interpolation primitives used
// throughout the signal code.
//
//   - [InterpolateY]: y on the line through two points at a given x
//   - [InterpolateX]: x on the line through two points at a given y
//
// Both return the shared coordinate instead of dividing by zero when the
// line is degenerate in the solved direction.
package interp
