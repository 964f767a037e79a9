// Package product contains the catalog Product aggregate. Products own their
// base unit price and availability; order assembly reads them and captures
// the price into line items, so the catalog stays the single source of truth
// for current prices while placed orders keep historical ones.
package product
