package visualization

import "math"

// Pearson returns the correlation coefficient of xs and ys, NaN when either series is
// constant or the lengths differ.
func Pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return math.NaN()
	}

	var meanX, meanY float64
	for i := range n {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var cov, varX, varY float64
	for i := range n {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}

// CorrelationMatrix correlates every pair of columns. Undefined coefficients become 0 so the
// matrix always encodes as JSON.
func CorrelationMatrix(columns [][]float64) [][]float64 {
	out := make([][]float64, len(columns))
	for i := range columns {
		out[i] = make([]float64, len(columns))
		for j := range columns {
			r := Pearson(columns[i], columns[j])
			if math.IsNaN(r) {
				r = 0
			}
			out[i][j] = r
		}
	}
	return out
}
