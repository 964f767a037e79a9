// Package kernel contains shared value objects used across all domain
// aggregates: UUID identifiers and fixed-scale Money amounts. Both are
// immutable and validate themselves, so aggregates can rely on any kernel
// value they hold being well-formed.
package kernel
