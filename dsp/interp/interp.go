package interp

// InterpolateX solves the line through (x1, y1) and (x2, y2) for the x at
// which it reaches y. If x1 == x2 the line is vertical and x1 is returned.
func InterpolateX(x1, y1, x2, y2, y float64) float64 {
	if x1 == x2 {
		return x1
	}
	a := (y2 - y1) / (x2 - x1)
	b := y1 - a*x1
	return (y - b) / a
}

// InterpolateY solves the line through (x1, y1) and (x2, y2) for the y at x.
// If y1 == y2 the line is horizontal and y1 is returned.
func InterpolateY(x1, y1, x2, y2, x float64) float64 {
	if y1 == y2 {
		return y1
	}
	a := (y2 - y1) / (x2 - x1)
	b := y1 - a*x1
	return a*x + b
}
