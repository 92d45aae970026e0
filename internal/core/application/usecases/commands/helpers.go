package commands

// carrierName unwraps an optional carrier for operation log entries.
func carrierName(carrier *string) string {
	if carrier == nil {
		return ""
	}
	return *carrier
}
