// Package render prepares signals for drawing: [Rescale] maps m/z and
// intensity onto integer device coordinates and [Filter] drops points that
// would land on the same pixel column without losing the local extrema.
package render
