// Package trace provides lightweight structured tracing for the tokenizer CLI.
//
// A Tracer receives Events. Spans pair a begin and an end event and nest through
// parent IDs; point events mark instants such as a single emitted token.
//
// Levels filter by Scope:
//
//	off    nothing
//	error  nothing besides explicit error points
//	phase  driver and phase spans (decode, tokenize, render)
//	debug  everything, including one point per token
//
// The tracer travels in a context.Context:
//
//	ctx = trace.WithTracer(ctx, tr)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopePhase, "tokenize", 0)
//	defer sp.End("")
//
// Output is text by default; a path ending in ".ndjson" selects newline-delimited JSON.
package trace
