package stats

import "gonum.org/v1/gonum/stat/distuv"

var unitNormal = distuv.Normal{Mu: 0, Sigma: 1}

// ZVal returns the two-tailed z-value for a confidence given in percent,
// e.g. ZVal(95) is about 1.96.
func ZVal(confidence float64) float64 {
	return unitNormal.Quantile((1 + confidence/100) / 2)
}
