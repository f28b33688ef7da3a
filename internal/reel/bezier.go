package reel

// Bezier is a CSS-style cubic-bezier timing function with fixed end
// points (0,0) and (1,1).
type Bezier struct {
	X1, Y1, X2, Y2 float64
}

// EaseOut is cubic-bezier(0.33, 1, 0.68, 1), a fast start that settles
// gently onto the final word.
var EaseOut = Bezier{X1: 0.33, Y1: 1, X2: 0.68, Y2: 1}

// At maps time x in [0,1] to progress.
func (b Bezier) At(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return sample(b.Y1, b.Y2, b.solve(x))
}

// solve finds the curve parameter t whose x coordinate is x. Newton steps
// first, bisection if the slope is too flat.
func (b Bezier) solve(x float64) float64 {
	const epsilon = 1e-7

	t := x
	for range 8 {
		dx := sample(b.X1, b.X2, t) - x
		if abs(dx) < epsilon {
			return t
		}
		d := slope(b.X1, b.X2, t)
		if abs(d) < 1e-6 {
			break
		}
		t -= dx / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for lo < hi {
		v := sample(b.X1, b.X2, t)
		if abs(v-x) < epsilon {
			return t
		}
		if x > v {
			lo = t
		} else {
			hi = t
		}
		if hi-lo < epsilon {
			break
		}
		t = (lo + hi) / 2
	}
	return t
}

// sample evaluates one coordinate of the curve at parameter t.
func sample(p1, p2, t float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func slope(p1, p2, t float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
