// Package reshape is your in-memory toolbox for reworking everyday
// values (strings, slices, maps, sets, tuples and paths) through one
// consistent, kind-aware API.
//
// 🚀 What is reshape?
//
//	A small, pure library that brings together:
//		• Affixing: add or drop prefixes, suffixes and substrings across kinds
//		• Scrubbing: filter "_private" and "__dunder" named entries
//		• Splitting: cleave text in two, or separate it around every divider
//		• Deduplication: order-preserving removal of repeats
//		• Case conversion: snake_case ⇄ CapitalCase
//		• Sliding windows: lazy, restartable fixed-length views with padding
//		• Coercion: numbers, strings, slices, tuples, sets, maps, paths
//
// ✨ Why choose reshape?
//
//   - Kind-aware dispatch – one call works on text, mappings, sequences,
//     sets and tuples alike
//   - Fail or degrade – every dispatching call can raise a typed error or
//     fall back to a configured per-kind default
//   - Pure Go values – no I/O, no goroutines, no hidden state beyond one
//     explicit Settings record
//   - Extensible – register new kinds with their own matchers and defaults
//
// Under the hood, everything is organized under seven subpackages:
//
//	affix/    — prefix/suffix/substring add & drop, dunder/private scrubbing
//	caseconv/ — snake_case and CapitalCase conversion
//	convert/  — one-directional coercers between kinds
//	core/     — kinds, settings, tri-state flags & the fallback resolver
//	dedupe/   — order-preserving deduplication
//	split/    — cleave (two parts) and separate (all parts)
//	window/   — sliding fixed-length windows over sequences
//
// Quick example:
//
//	out, _ := affix.AddPrefix("world", "hello", &affix.Options{Divider: "-"})
//	// out == "hello-world"
//
// Dive into the per-package doc.go files for contracts, error kinds and
// complexity notes.
//
//	go get github.com/katalvlaran/reshape
package reshape
