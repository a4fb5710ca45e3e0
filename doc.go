// Package betainc computes the regularized incomplete beta function
// I_x(a,b) to near machine precision over the whole parameter domain, and
// the distribution functions built on it.
//
// 🚀 What is in the box?
//
//	• toms708/  — the evaluator: Bratio, the regime selector and the series,
//	              continued-fraction and asymptotic kernels behind it
//	• dist/     — beta, binomial, negative binomial, F and Student t CDFs with
//	              lower/upper tails and log-probabilities
//	• logging/  — a zap-backed sink for the evaluator's numerical warnings
//	• cmd/betainc — a command-line front end (eval, regime, cdf)
//
// ✨ Why another incomplete beta?
//
//   - Log scale throughout – tails far below 1e-308 stay representable
//   - Observable routing – Select reports which kernel a query will use
//   - Pure scalar code – no global state, safe from many goroutines
//   - Warnings are data – non-convergence goes to an injected sink
//
// Quick start:
//
//	r := toms708.Bratio(2, 3, 0.2, 0.8, false) // r.W = 0.1808
//	p, _ := dist.BinomialCDF(3, 10, 0.25)      // 0.775875
package betainc
