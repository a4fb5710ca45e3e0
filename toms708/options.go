// SPDX-License-Identifier: MIT

package toms708

const panicNilDiagnostics = "toms708: WithDiagnostics: sink must not be nil"

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option and resolve them via
// gatherOptions.
type Options struct {
	diag Diagnostics // NopDiagnostics by default
}

// WithDiagnostics routes kernel warnings to d.
//
// Panics when d is nil; pass NopDiagnostics to silence explicitly.
func WithDiagnostics(d Diagnostics) Option {
	if d == nil {
		panic(panicNilDiagnostics)
	}

	return func(o *Options) { o.diag = d }
}

func defaultOptions() Options {
	return Options{diag: NopDiagnostics}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
