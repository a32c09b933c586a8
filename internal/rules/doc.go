// Package rules holds the deterministic pantry logic: status classification,
// remaining-supply ratio, price deltas, recommendation ranking and list
// aggregation. Every function is pure and safe for concurrent use.
package rules
