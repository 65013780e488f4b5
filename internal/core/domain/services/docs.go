// Package services provides domain services that span more than one
// aggregate of the order domain.
//
// The package includes:
//   - OrderPricer: values order lines against the current catalog
//
// Order items keep only product and service identifiers, so totals are
// never stored; they are derived from live product prices every time an
// order is read.
package services
