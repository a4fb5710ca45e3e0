// SPDX-License-Identifier: MIT

package toms708

// Event is one non-fatal numerical warning raised inside a kernel, e.g. a
// series that hit its iteration cap or an expansion that gave up early.
//
// Kernel names the routine ("bpser", "bfrac", "bgrat", "bratio", ...);
// Fields carries the numeric context (shapes, argument, last term).
type Event struct {
	Kernel  string
	Message string
	Fields  map[string]float64
}

// Diagnostics is a write-only sink for Events. Implementations must be safe
// for concurrent use when a single sink is shared by many goroutines.
type Diagnostics interface {
	Report(Event)
}

// NopDiagnostics discards every event. It is the default sink.
var NopDiagnostics Diagnostics = nopDiagnostics{}

type nopDiagnostics struct{}

func (nopDiagnostics) Report(Event) {}

// DiagnosticsFunc adapts a plain function to Diagnostics.
type DiagnosticsFunc func(Event)

// Report calls f(e).
func (f DiagnosticsFunc) Report(e Event) { f(e) }

// warn builds an Event from key/value pairs and hands it to d.
// kv alternates field names and values; an odd tail is ignored.
func warn(d Diagnostics, kernel, msg string, kv ...any) {
	if d == nil {
		return
	}
	var fields map[string]float64
	if len(kv) > 1 {
		fields = make(map[string]float64, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			name, ok := kv[i].(string)
			if !ok {
				continue
			}
			switch v := kv[i+1].(type) {
			case float64:
				fields[name] = v
			case int:
				fields[name] = float64(v)
			}
		}
	}
	d.Report(Event{Kernel: kernel, Message: msg, Fields: fields})
}
