// SPDX-License-Identifier: MIT

// Command betainc evaluates the regularized incomplete beta function and the
// distribution functions built on it.
//
//	betainc eval --a 2 --b 3 --x 0.2
//	betainc regime --a 50 --b 60 --x 0.5
//	betainc cdf binom --k 3 --n 10 --p 0.25 --lower-tail=false
//
// Settings come from BETAINC_* environment variables and can be overridden
// by the persistent flags. Core diagnostics are logged to stderr.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
