// SPDX-License-Identifier: MIT

package toms708

import "fmt"

// Query is one incomplete beta evaluation request.
//
// Fields:
//   - A, B — shape parameters, both ≥ 0 and not both 0.
//   - X, Y — the argument and its complement; Y must equal 1 − X within
//     3·DBL_EPSILON. Passing Y separately keeps precision when the caller
//     knows 1 − X more accurately than the subtraction would give it.
//   - LogP — return log I_x(a,b) and log(1 − I_x(a,b)) instead.
type Query struct {
	A, B float64
	X, Y float64
	LogP bool
}

// Result holds the pair (W, W1) and the status of the evaluation.
//
// Linear scale: W = I_x(a,b), W1 = 1 − W, both in [0,1].
// Log scale:    W = log I_x(a,b), W1 = log(1 − I_x(a,b)), both ≤ 0.
//
// On a domain error (Status 1..9) both values are the zero of the selected
// scale (0 or −Inf).
type Result struct {
	W, W1  float64
	Status Status
}

// Status is the ierr code of the evaluation.
type Status int

const (
	StatusOK            Status = 0
	StatusNegativeShape Status = 1
	StatusZeroShapes    Status = 2
	StatusXOutOfRange   Status = 3
	StatusYOutOfRange   Status = 4
	StatusXYMismatch    Status = 5
	StatusXAndAZero     Status = 6
	StatusYAndBZero     Status = 7
	StatusNaN           Status = 9

	// statusBgratBase is added to the inner bgrat error code.
	statusBgratBase Status = 10

	StatusBgratUnderflow     Status = 11
	StatusBgratScale         Status = 12
	StatusBgratSum           Status = 13
	StatusBgratNoConvergence Status = 14
)

var statusErrors = map[Status]error{
	StatusNegativeShape:      ErrNegativeShape,
	StatusZeroShapes:         ErrZeroShapes,
	StatusXOutOfRange:        ErrXOutOfRange,
	StatusYOutOfRange:        ErrYOutOfRange,
	StatusXYMismatch:         ErrXYMismatch,
	StatusXAndAZero:          ErrXAndAZero,
	StatusYAndBZero:          ErrYAndBZero,
	StatusNaN:                ErrNaN,
	StatusBgratUnderflow:     ErrExpansionUnderflow,
	StatusBgratScale:         ErrExpansionScale,
	StatusBgratSum:           ErrExpansionSum,
	StatusBgratNoConvergence: ErrExpansionNoConvergence,
}

// Err returns nil for StatusOK and the matching sentinel otherwise.
func (s Status) Err() error {
	if s == StatusOK {
		return nil
	}
	if err, ok := statusErrors[s]; ok {
		return err
	}

	return fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
}

// IsDomainError reports whether s rejects the input (codes 1..9).
func (s Status) IsDomainError() bool { return s >= 1 && s <= 9 }

// IsReducedConfidence reports whether the result is usable but came from an
// expansion that did not finish cleanly (codes ≥ 10).
func (s Status) IsReducedConfidence() bool { return s >= statusBgratBase }

func (s Status) String() string {
	if s == StatusOK {
		return "ok"
	}

	return s.Err().Error()
}

// Regime is the tagged selector produced by Select.
type Regime int

const (
	// RegimeInvalid: a domain error; nothing is computed.
	RegimeInvalid Regime = iota
	// RegimeBoundary: x = 0, y = 0, a = 0 or b = 0 with an exact answer.
	RegimeBoundary
	// RegimeTinyShapes: max(a,b) < 0.001·eps, result independent of x.
	RegimeTinyShapes
	// RegimeFpser: w from the small-b series.
	RegimeFpser
	// RegimeApser: w1 from the small-a series.
	RegimeApser
	// RegimeBpser: w from the power series.
	RegimeBpser
	// RegimeBpserComplement: w1 from the power series with roles exchanged.
	RegimeBpserComplement
	// RegimeBgrat: w1 from the large-a expansion, no shift (b0 > 15).
	RegimeBgrat
	// RegimeBupBgrat: w1 from a shift of b0 by 20 followed by the large-a expansion.
	RegimeBupBgrat
	// RegimeBfrac: w from the continued fraction.
	RegimeBfrac
	// RegimeBupBpser: w from stripping the integer part of b0, then the power series.
	RegimeBupBpser
	// RegimeBupBgratShift: w from stripping the integer part of b0, an
	// optional shift of a0 by 20, then the large-a expansion.
	RegimeBupBgratShift
	// RegimeBasym: w from the large-(a,b) expansion.
	RegimeBasym
)

var regimeNames = [...]string{
	RegimeInvalid:         "invalid",
	RegimeBoundary:        "boundary",
	RegimeTinyShapes:      "tiny-shapes",
	RegimeFpser:           "fpser",
	RegimeApser:           "apser",
	RegimeBpser:           "bpser",
	RegimeBpserComplement: "bpser-complement",
	RegimeBgrat:           "bgrat",
	RegimeBupBgrat:        "bup+bgrat",
	RegimeBfrac:           "bfrac",
	RegimeBupBpser:        "bup+bpser",
	RegimeBupBgratShift:   "bup+bgrat-shift",
	RegimeBasym:           "basym",
}

func (r Regime) String() string {
	if r >= 0 && int(r) < len(regimeNames) {
		return regimeNames[r]
	}

	return fmt.Sprintf("Regime(%d)", int(r))
}

// Plan is the normalized form of a Query together with the regime chosen
// for it. A0, B0, X0, Y0 are the working parameters after the symmetry
// swap; Lambda is only meaningful when both shapes exceed 1.
//
// For RegimeInvalid, Status carries the domain error. For RegimeBoundary
// and RegimeTinyShapes, W and W1 already hold the final answer.
type Plan struct {
	Regime  Regime
	Status  Status
	Swapped bool

	A0, B0 float64
	X0, Y0 float64
	Lambda float64
	Eps    float64
	LogP   bool

	W, W1 float64
}
