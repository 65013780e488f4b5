// Package status models order lifecycle stages and the name-or-id
// reference used to select a target stage.
package status
