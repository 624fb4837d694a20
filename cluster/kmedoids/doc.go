// Package kmedoids implements k-medoids clustering over a precomputed
// symmetric distance matrix.
//
// Seeding is either k-medoids++ (first medoid fixed at item 0, following
// medoids drawn with probability proportional to the distance to the closest
// medoid chosen so far), a seeded random sample of distinct rows, or an
// explicit medoid list. Each iteration assigns every item to its closest
// medoid and then moves each medoid to the member with the lowest mean
// distance to the rest of its cluster. When MaxIter is exhausted the last
// medoid set is used for a final assignment and the result is returned with
// Converged unset.
package kmedoids
