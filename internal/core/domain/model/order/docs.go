// Package order contains the Order aggregate: the order entity with its
// owned line items, and the Status state machine that governs the order
// lifecycle from Pending through preparation to a terminal Delivered or
// Cancelled state.
package order
