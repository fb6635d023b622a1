// Package decompose splits a word into its (prefix, a, b, suffix) tuple.
//
// For a word w whose alphabet C has at least two letters:
//
//	Prefix: the longest prefix of w whose alphabet is C \ {A}
//	A     : the letter right after Prefix (the last letter of C to appear)
//	Suffix: the longest suffix of w whose alphabet is C \ {B}
//	B     : the letter right before Suffix
//
// Prefix·A and B·Suffix may overlap inside w; A may equal B. The tuple
// is uniquely determined by w and is the backbone of canonicalization
// and of monoid generation.
//
// Complexity: O(|w|) time, no allocation beyond the returned tuple
// (Prefix and Suffix are views into w).
package decompose
