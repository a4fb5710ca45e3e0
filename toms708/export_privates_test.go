// SPDX-License-Identifier: MIT

package toms708

// Test bridge: exposes unexported primitives and kernels to toms708_test so
// they can be checked against independent implementations without widening
// the public API. Compiled only with the package's tests.
var (
	ExportedAlnrel      = alnrel
	ExportedRlog1       = rlog1
	ExportedRexpm1      = rexpm1
	ExportedEsum        = esum
	ExportedExparg      = exparg
	ExportedLogspaceAdd = logspaceAdd
	ExportedLog1mexp    = log1mexp
	ExportedErf         = erf
	ExportedErfc1       = erfc1

	ExportedGam1   = gam1
	ExportedGamln1 = gamln1
	ExportedGamln  = gamln
	ExportedGsumln = gsumln
	ExportedAlgdiv = algdiv
	ExportedBcorr  = bcorr
	ExportedBetaln = betaln
	ExportedPsi    = psi

	ExportedBrcmp1 = brcmp1
	ExportedBasym  = basym
	ExportedGratR  = gratR
)

// ExportedBpser runs bpser with a caller-supplied sink.
func ExportedBpser(d Diagnostics, a, b, x, eps float64, logP bool) float64 {
	return bpser(d, a, b, x, eps, logP)
}

// ExportedBfrac runs bfrac with a caller-supplied sink.
func ExportedBfrac(d Diagnostics, a, b, x, y, lambda, eps float64, logP bool) float64 {
	return bfrac(d, a, b, x, y, lambda, eps, logP)
}

// ExportedBgrat runs bgrat with a caller-supplied sink.
func ExportedBgrat(d Diagnostics, a, b, x, y, w, eps float64, logW bool) (float64, int) {
	return bgrat(d, a, b, x, y, w, eps, logW)
}
