// Package order contains the Order aggregate, its immutable line items, the
// events it records and the outcome type of status transitions.
package order
