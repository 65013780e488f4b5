// Package kernel holds the value objects shared by every order-domain
// package: the UUID identifier and calendar month arithmetic used by the
// rolling profit window.
package kernel
