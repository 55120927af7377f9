// Package analytics filters and aggregates one user's sales in memory.
//
// Every function is pure: callers pass the full, insertion-ordered sale list
// together with "today", and receive plain values back. Ordering of the input
// is preserved in every output and decides ties between equal groups.
package analytics
