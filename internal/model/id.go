package model

import (
	"fmt"
	"strconv"
)

// ID is the numeric identifier shared by all entities. The database issues
// them monotonically; clients always see them as decimal strings so that
// values above 2^53 survive JSON round-trips.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ParseID converts the external string form back to an ID.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return ID(v), nil
}
