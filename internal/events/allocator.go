package events

import (
	"fmt"
	"strconv"
)

// NextEventID derives the identifier for a new event from the current
// maximum stored identifier. An empty maxID means no events exist yet and
// yields "0"; otherwise the result is the decimal successor of maxID.
func NextEventID(maxID string) (string, error) {
	if maxID == "" {
		return "0", nil
	}
	n, err := strconv.ParseUint(maxID, 10, 64)
	if err != nil {
		return "", fmt.Errorf("stored eventId %q is not numeric: %w", maxID, err)
	}
	return strconv.FormatUint(n+1, 10), nil
}
