// SPDX-License-Identifier: MIT

package dist_test

import "math"

// binomPMFSum returns P(X ≤ k) for X ~ Binomial(n, p) by direct summation.
func binomPMFSum(k, n int, p float64) float64 {
	lgN1, _ := math.Lgamma(float64(n + 1))
	sum := 0.0
	for j := 0; j <= k && j <= n; j++ {
		lgJ, _ := math.Lgamma(float64(j + 1))
		lgNJ, _ := math.Lgamma(float64(n - j + 1))
		sum += math.Exp(lgN1 - lgJ - lgNJ + float64(j)*math.Log(p) + float64(n-j)*math.Log1p(-p))
	}

	return sum
}

// nbinomPMFSum returns P(X ≤ k) for the negative binomial with real size by
// direct summation of Γ(j+size)/(Γ(size)·j!)·prob^size·(1−prob)^j.
func nbinomPMFSum(k int, size, prob float64) float64 {
	lgS, _ := math.Lgamma(size)
	sum := 0.0
	for j := 0; j <= k; j++ {
		lgJS, _ := math.Lgamma(float64(j) + size)
		lgJ1, _ := math.Lgamma(float64(j + 1))
		sum += math.Exp(lgJS - lgS - lgJ1 + size*math.Log(prob) + float64(j)*math.Log1p(-prob))
	}

	return sum
}
