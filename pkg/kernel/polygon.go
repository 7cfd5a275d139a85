package kernel

// SignedArea returns the shoelace area of a 2D outline. It is positive
// for counter-clockwise outlines.
func SignedArea(outline [][2]float64) float64 {
	var a float64
	for i, p := range outline {
		q := outline[(i+1)%len(outline)]
		a += p[0]*q[1] - q[0]*p[1]
	}
	return a / 2
}

// CounterClockwise returns outline in counter-clockwise order, reversing
// a copy when needed.
func CounterClockwise(outline [][2]float64) [][2]float64 {
	out := make([][2]float64, len(outline))
	copy(out, outline)
	if SignedArea(out) < 0 {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
