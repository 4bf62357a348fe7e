// Package textutil provides the text-comparison primitives used by the
// merge engine: token-frequency fingerprints, cosine similarity with
// optional TF-IDF weighting, and display-oriented helpers such as title
// casing. Scores are in [0, 1]; empty or token-free input always scores 0.
package textutil
