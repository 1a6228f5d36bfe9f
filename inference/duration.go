package inference

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultDurationDays is used when a duration is missing or unparseable
const DefaultDurationDays = 30

// MaxDurationDays bounds a parsed duration; longer ones count as unparseable
const MaxDurationDays = 3650

var durationRE = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(개월|달|months?|주|weeks?|일|days?)`)

// ParseDurationDays converts text like "2주" or "3개월" to a day count.
// Weeks are 7 days and months 30 days; fractional counts round to the
// nearest day.
func ParseDurationDays(text string) int {
	match := durationRE.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return DefaultDurationDays
	}
	n, err := strconv.ParseFloat(match[1], 64)
	if err != nil || n <= 0 {
		return DefaultDurationDays
	}

	switch unit := strings.ToLower(match[2]); {
	case unit == "개월" || unit == "달" || strings.HasPrefix(unit, "month"):
		n *= 30
	case unit == "주" || strings.HasPrefix(unit, "week"):
		n *= 7
	}

	days := math.Round(n)
	if days < 1 || days > MaxDurationDays {
		return DefaultDurationDays
	}
	return int(days)
}
