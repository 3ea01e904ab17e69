// Package observability records what cronalpha did as structured JSON Lines
// (JSONL) events: tables loaded, analyses computed or rejected. The log is
// opt-in and never affects a computed result.
package observability
