// Package features turns a sequence corpus into numeric feature rows for
// strategies that cluster in vector space.
package features
