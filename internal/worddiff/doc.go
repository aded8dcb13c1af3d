// Package worddiff computes word-level diffs between two text strings for
// human review of AI-suggested edits.
//
// Text is tokenized into words, whitespace runs, and punctuation marks; the
// two token sequences are aligned with a longest-common-subsequence table; the
// result is an ordered edit script of Equal/Insert/Delete segments that
// reconstructs either input. The engine is pure and synchronous: no I/O, no
// shared state, byte-identical output for identical inputs.
//
// The intended inputs are human-reviewed passages (a selection and an LLM's
// revision of it), not whole documents, so the O(m*n) table is acceptable.
package worddiff
