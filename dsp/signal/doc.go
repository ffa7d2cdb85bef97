// Package signal implements the point-sequence algorithms of the core: a
// [Signal] is an ordered run of (x, y) points, x being m/z and y intensity,
// stored flat in a two-column buffer.
//
// Queries:
//
//   - [LocateX], [LocateMaxY], [BoxOf]
//   - [Intensity], [Centroid], [Width], [Area], [AreaRange]
//   - [Noise], [NoiseRange], [NoiseAt], [LocalMaxima]
//
// Transforms, each returning a freshly allocated signal:
//
//   - [Crop], [Offset], [Multiply], [Normalize]
//   - [Combine], [Overlay], [Subtract] (sorted merge with interpolation)
//   - [SubtractBaseline]
//
// Every algorithm assumes non-decreasing x. The checked constructors
// ([FromData], [FromXY], [FromBuffer]) enforce it; [Unchecked] leaves it to
// the caller.
package signal
