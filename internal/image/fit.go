package imagepkg

// FitSize scales (srcW, srcH) uniformly so it fits inside (availW, availH)
// without distortion. The limiting dimension matches the box exactly; the
// other one is floored. Both results are at least 1.
func FitSize(srcW, srcH, availW, availH int) (w, h int) {
	if srcW <= 0 || srcH <= 0 || availW <= 0 || availH <= 0 {
		return 0, 0
	}
	// availW/srcW <= availH/srcH, cross-multiplied to stay in integers
	if availW*srcH <= availH*srcW {
		w = availW
		h = availW * srcH / srcW
	} else {
		h = availH
		w = availH * srcW / srcH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
