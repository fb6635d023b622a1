// Package freeband is a toolkit for the free idempotent monoid (the free
// band): words over a finite alphabet where every square xx may be replaced
// by x and back.
//
// 🚀 What is freeband?
//
//	A pure-Go library and CLI that brings together:
//		• Words & alphabets: parsing, relabeling, shortlex order
//		• Decomposition: the (prefix, a, b, suffix) invariant of a word
//		• Canonical forms: unique shortest representatives, with optional
//		  replayable rewrite traces
//		• Generation: every element on n letters, memoized and concurrent
//		• Exploration: BFS over square rewrites, removal-class census
//
// ✨ Why choose freeband?
//
//   - Exact – canonical forms cross-checked against exhaustive search
//   - Explainable – every reduction can come with the squares it removed
//   - Cancellable – generation honors context and runs on a worker pool
//   - Observable – zap logging and OpenTelemetry spans, no-op by default
//
// Under the hood, everything is organized in small packages:
//
//	word/     : Letter, Word, Alphabet, Substitution
//	decompose/: Decompose: (p, a, b, q) and the head/tail/middle factors
//	rewrite/  : Step, Trace, Builder, greedy square removal
//	canon/    : Canonical, Canonicalize, Trim, Equivalent, Multiply
//	monoid/   : Generate, Store, Count, Table
//	explore/  : Explore, Classes
//	wordlist/ : element list I/O and verification
//	cmd/freeband: generate, reduce, table, verify and explore commands
//
// Quick example:
//
//	ababcbcbab → abcbab
//	  (abab)cbcbab -> (ab)cbcbab
//	  a(bcbc)bab   -> a(bc)bab
//
// On two letters the monoid has exactly seven elements:
//
//	0, a, b, ab, ba, aba, bab
//
//	go install github.com/katalvlaran/freeband/cmd/freeband@latest
package freeband
