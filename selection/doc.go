// Package selection picks a bounded set of representative members per
// cluster, either the members identical to the cluster center or the N
// members closest to it, and ranks mined patterns by their support in a
// corpus.
package selection
