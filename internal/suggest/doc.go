// Package suggest finds the closest known name for a misspelled one.
//
// Names are normalized (case-folded, separators removed) and compared by
// Levenshtein similarity, so "Rough-Plastic" ranks "rough_plastic" first.
//
// Key functions:
//   - Levenshtein: rune-wise edit distance
//   - Similarity: normalized similarity in [0, 1]
//   - Rank: known names ordered by similarity
//   - Closest: the best name above a threshold
package suggest
