package signal

import "sort"

// LocateX returns the index of the first point whose x is >= x, i.e. the
// insertion index that keeps the signal sorted with every earlier point
// strictly below x. 0 and Len() mean x lies before or after all points and
// are not valid interpolation anchors.
func LocateX(s Signal, x float64) int {
	return sort.Search(s.Len(), func(i int) bool { return s.X(i) >= x })
}

// locateAfter returns the index of the first point whose x is > x.
func locateAfter(s Signal, x float64) int {
	return sort.Search(s.Len(), func(i int) bool { return s.X(i) > x })
}

// bracket finds the segment [idx-1, idx] containing x. It fails when x lies
// outside [X(0), X(Len-1)] or the signal has fewer than two points.
func bracket(s Signal, x float64) (int, bool) {
	n := s.Len()
	if n < 2 || x < s.X(0) || x > s.X(n-1) {
		return 0, false
	}
	idx := locateAfter(s, x)
	if idx == n {
		idx = n - 1
	}
	return idx, true
}

// LocateMaxY returns the index of the first point carrying the maximum y.
func LocateMaxY(s Signal) (int, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySignal
	}
	idx := 0
	maxY := s.Y(0)
	for i := 1; i < s.Len(); i++ {
		if y := s.Y(i); y > maxY {
			maxY = y
			idx = i
		}
	}
	return idx, nil
}

// BoxOf returns the bounding box of s. The x bounds come from the first and
// last point, relying on x order; the y bounds from a full scan.
func BoxOf(s Signal) (Box, error) {
	n := s.Len()
	if n == 0 {
		return Box{}, ErrEmptySignal
	}
	box := Box{
		MinX: s.X(0),
		MaxX: s.X(n - 1),
		MinY: s.Y(0),
		MaxY: s.Y(0),
	}
	for i := 1; i < n; i++ {
		y := s.Y(i)
		if y < box.MinY {
			box.MinY = y
		}
		if y > box.MaxY {
			box.MaxY = y
		}
	}
	return box, nil
}
