package order

// StatusUpdateResult is the outcome of a status transition request. All four
// values are expected branches of normal operation, not errors.
type StatusUpdateResult int

const (
	// NotFound: no order has the requested identifier.
	NotFound StatusUpdateResult = iota + 1

	// InvalidStatus: the target status does not resolve, or the request
	// named no target at all.
	InvalidStatus

	// NoChange: the order already holds the target status. Nothing was
	// written.
	NoChange

	// Updated: the new status was persisted.
	Updated
)

func getResultStrings() map[StatusUpdateResult]string {
	return map[StatusUpdateResult]string{
		NotFound:      "NotFound",
		InvalidStatus: "InvalidStatus",
		NoChange:      "NoChange",
		Updated:       "Updated",
	}
}

func (r StatusUpdateResult) String() string {
	if s, ok := getResultStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// IsSuccess reports whether the order ends in the requested status.
func (r StatusUpdateResult) IsSuccess() bool {
	return r == Updated || r == NoChange
}
