// Package catalog models what can be ordered: services and the products
// they own, with unit cost and unit price.
package catalog
