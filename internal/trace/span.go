package trace

import (
	"sync/atomic"
	"time"
)

var (
	globalSeq   uint64
	globalSpans uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 {
	return atomic.AddUint64(&globalSeq, 1)
}

// NextSpanID returns a unique span ID.
func NextSpanID() uint64 {
	return atomic.AddUint64(&globalSpans, 1)
}

// Span pairs a begin event with the end event emitted by End.
type Span struct {
	tracer   Tracer
	id       uint64
	parentID uint64
	scope    Scope
	name     string
	extra    map[string]string
}

// Begin emits a begin event and returns the span. With a disabled tracer it
// returns a span whose methods do nothing.
func Begin(t Tracer, scope Scope, name string, parentID uint64) *Span {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return &Span{}
	}
	sp := &Span{
		tracer:   t,
		id:       NextSpanID(),
		parentID: parentID,
		scope:    scope,
		name:     name,
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindSpanBegin,
		Scope:    scope,
		SpanID:   sp.id,
		ParentID: parentID,
		Name:     name,
	})
	return sp
}

// ID returns the span identifier, 0 for a disabled span.
func (s *Span) ID() uint64 {
	return s.id
}

// WithExtra attaches a key/value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s.tracer == nil {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// End emits the end event.
func (s *Span) End(detail string) {
	if s.tracer == nil {
		return
	}
	s.tracer.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindSpanEnd,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parentID,
		Name:     s.name,
		Detail:   detail,
		Extra:    s.extra,
	})
}

// Point emits an instant event under parentID.
func Point(t Tracer, scope Scope, name, detail string, parentID uint64, extra map[string]string) {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parentID,
		Name:     name,
		Detail:   detail,
		Extra:    extra,
	})
}
