// Package services contains stateless domain services that coordinate
// multiple aggregates. The OrderAssembler applies the order placement rules
// (delivery data, availability, price capture, total computation) over
// customer, product, and order values without touching infrastructure.
package services
