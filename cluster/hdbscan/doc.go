// Package hdbscan adapts github.com/humilityai/hdbscan to item labels.
//
// The library clusters rows of float64 under a row distance function.
// Feature rows are passed as they are with Euclidean distance; a
// precomputed distance matrix is passed as single-value rows holding the
// item index, with a distance function that reads the matrix. Clusters are
// extracted by stability and labelled in order of their first member;
// items outside every cluster are labelled Noise.
package hdbscan
