// SPDX-License-Identifier: MIT

package dist

import (
	"math"

	"github.com/katalvlaran/betainc/toms708"
)

const panicNilDiagnostics = "dist: WithDiagnostics: sink must not be nil"

// Option mutates Options. Safe to apply repeatedly; later options win.
type Option func(*Options)

// Options holds the resolved tail, scale and diagnostic sink.
type Options struct {
	lowerTail bool
	logP      bool
	diag      toms708.Diagnostics
}

// LowerTail selects P(X ≤ x) when true (the default) and P(X > x) otherwise.
func LowerTail(lower bool) Option {
	return func(o *Options) { o.lowerTail = lower }
}

// LogP returns log-probabilities when true.
func LogP(logP bool) Option {
	return func(o *Options) { o.logP = logP }
}

// WithDiagnostics routes numerical warnings from the core and from this
// package to d. Panics when d is nil.
func WithDiagnostics(d toms708.Diagnostics) Option {
	if d == nil {
		panic(panicNilDiagnostics)
	}

	return func(o *Options) { o.diag = d }
}

func gatherOptions(opts ...Option) Options {
	o := Options{lowerTail: true, diag: toms708.NopDiagnostics}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// flipped returns o with the tail exchanged.
func (o Options) flipped() Options {
	o.lowerTail = !o.lowerTail

	return o
}

// d0 and d1 are probability 0 and 1 on the selected scale.
func (o Options) d0() float64 {
	if o.logP {
		return math.Inf(-1)
	}

	return 0
}

func (o Options) d1() float64 {
	if o.logP {
		return 0
	}

	return 1
}

// dt0 is P = 0 for the lower tail, i.e. the tail-adjusted zero.
func (o Options) dt0() float64 {
	if o.lowerTail {
		return o.d0()
	}

	return o.d1()
}

// dt1 is P = 1 for the lower tail.
func (o Options) dt1() float64 {
	if o.lowerTail {
		return o.d1()
	}

	return o.d0()
}

// half is probability ½ on the selected scale; both tails agree.
func (o Options) half() float64 {
	if o.logP {
		return -math.Ln2
	}

	return 0.5
}

// pick returns the requested tail of a core result.
func (o Options) pick(r toms708.Result) float64 {
	if o.lowerTail {
		return r.W
	}

	return r.W1
}

// fromLinear converts a linear lower/upper pair to the selected tail and scale.
func (o Options) fromLinear(lower, upper float64) float64 {
	p := upper
	if o.lowerTail {
		p = lower
	}
	if o.logP {
		return math.Log(p)
	}

	return p
}
