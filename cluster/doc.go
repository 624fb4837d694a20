// Package cluster partitions a sequence corpus with one of a closed set of
// strategies and normalises every outcome into the same Result shape.
//
// Strategies are plain values (KMedoids, DensityPrecomputed, DensityFeature,
// CentroidFeature, ModeSeekingFeature, Overlapping) carrying their own
// parameters. Partition checks that the Input holds what the strategy needs
// (a distance matrix, feature rows or only the corpus) before running it.
// Engine owns a corpus and lazily caches its distance matrix so several
// strategies can be tried against the same data.
package cluster
