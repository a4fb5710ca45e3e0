// SPDX-License-Identifier: MIT

package logging

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/betainc/toms708"
)

// Sink reports toms708 events as zap warnings. It is safe for concurrent
// use because *zap.Logger is.
type Sink struct {
	log *zap.Logger
}

var _ toms708.Diagnostics = (*Sink)(nil)

// NewSink wraps l; a nil l yields a no-op sink.
func NewSink(l *zap.Logger) *Sink {
	if l == nil {
		l = zap.NewNop()
	}

	return &Sink{log: l.Named("toms708")}
}

// Report logs e at warn level with one float field per entry, keys sorted.
func (s *Sink) Report(e toms708.Event) {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]zap.Field, 0, len(keys)+1)
	fields = append(fields, zap.String("kernel", e.Kernel))
	for _, k := range keys {
		fields = append(fields, zap.Float64(k, e.Fields[k]))
	}
	s.log.Warn(e.Message, fields...)
}

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []toms708.Event
}

var _ toms708.Diagnostics = (*Recorder)(nil)

// Report appends e.
func (r *Recorder) Report(e toms708.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []toms708.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]toms708.Event(nil), r.events...)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events)
}

// Reset drops every recorded event.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
