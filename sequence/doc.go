// Package sequence defines token sequences, corpora and the pairwise
// distance metrics used to compare them. It includes:
//   - Sequence and Corpus types with validation and de-duplication helpers
//   - Nine distance metrics (LCS family, Jaccard family, gestalt, seqsim,
//     levenshtein) resolved through the Metric enum
//   - LCSLen and IsSubsequence primitives shared by the metrics and the
//     overlapping clustering strategy
//   - A compact BLOB encoding used when sequences are stored in SQLite
package sequence
