package ledger

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultPoints is the value given to a chore when no usable number was
// entered.
const DefaultPoints = 1

// MaxPoints is the most a single chore may be worth.
const MaxPoints = 1000

// ParsePoints converts free-text input into a point value. Blank or
// non-numeric text yields DefaultPoints. Any parsed integer is returned as is,
// so AddChore still rejects values outside 1..MaxPoints. Integers too large
// for an int come back clamped to math.MaxInt or math.MinInt.
func ParsePoints(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPoints
	}
	n, err := strconv.Atoi(raw)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return DefaultPoints
	}
	return n
}
