// SPDX-License-Identifier: MIT

package toms708_test

import (
	"math"
	"sync"

	"github.com/katalvlaran/betainc/toms708"
)

// binomUpper returns P(X ≥ k) for X ~ Binomial(n, p), which equals
// I_p(k, n−k+1) for integer shapes.
func binomUpper(n, k int, p float64) float64 {
	lgN1, _ := math.Lgamma(float64(n + 1))
	sum := 0.0
	for j := k; j <= n; j++ {
		lgJ, _ := math.Lgamma(float64(j + 1))
		lgNJ, _ := math.Lgamma(float64(n - j + 1))
		sum += math.Exp(lgN1 - lgJ - lgNJ + float64(j)*math.Log(p) + float64(n-j)*math.Log1p(-p))
	}

	return sum
}

// incBetaInt returns I_x(a,b) for positive integer a and b.
func incBetaInt(a, b int, x float64) float64 {
	return binomUpper(a+b-1, a, x)
}

// recorder collects reported events; safe for concurrent use.
type recorder struct {
	mu     sync.Mutex
	events []toms708.Event
}

func (r *recorder) Report(e toms708.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) kernels() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kernel)
	}

	return out
}

// logBinomUpper is binomUpper on the log scale, for tails that underflow.
func logBinomUpper(n, k int, p float64) float64 {
	lgN1, _ := math.Lgamma(float64(n + 1))
	acc := math.Inf(-1)
	for j := k; j <= n; j++ {
		lgJ, _ := math.Lgamma(float64(j + 1))
		lgNJ, _ := math.Lgamma(float64(n - j + 1))
		term := lgN1 - lgJ - lgNJ + float64(j)*math.Log(p) + float64(n-j)*math.Log1p(-p)
		hi, lo := math.Max(acc, term), math.Min(acc, term)
		if math.IsInf(hi, -1) {
			continue
		}
		acc = hi + math.Log1p(math.Exp(lo-hi))
	}

	return acc
}
