package token

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultTTL is the access token lifetime used when none or an invalid one is configured.
const DefaultTTL = time.Hour

// ParseExpiresIn converts raw seconds ("3600") or a suffixed duration
// ("45s", "30m", "2h", "7d") into a duration. Anything else yields DefaultTTL.
func ParseExpiresIn(value string) time.Duration {
	value = strings.TrimSpace(value)
	value = strings.Trim(value, `"'`)
	if value == "" {
		return DefaultTTL
	}

	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		return scale(secs, time.Second)
	}

	unit := value[len(value)-1]
	n, err := strconv.ParseInt(value[:len(value)-1], 10, 64)
	if err != nil {
		return DefaultTTL
	}

	switch unit {
	case 's':
		return scale(n, time.Second)
	case 'm':
		return scale(n, time.Minute)
	case 'h':
		return scale(n, time.Hour)
	case 'd':
		return scale(n, 24*time.Hour)
	default:
		return DefaultTTL
	}
}

// scale returns n units, or DefaultTTL if n is not positive or the product
// does not fit in a time.Duration.
func scale(n int64, unit time.Duration) time.Duration {
	if n <= 0 || n > math.MaxInt64/int64(unit) {
		return DefaultTTL
	}
	return time.Duration(n) * unit
}
