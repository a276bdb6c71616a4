package sport

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Sport string

const (
	Football   Sport = "football"
	Basketball Sport = "basketball"
	Cricket    Sport = "cricket"
)

// All lists every sport the service proxies.
var All = []Sport{Football, Basketball, Cricket}

var ErrUnknownSport = errors.New("unknown sport")

// Parse resolves a sportType query value. Empty input yields fallback.
func Parse(raw string, fallback Sport) (Sport, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return fallback, nil
	}
	switch Sport(value) {
	case Football, Basketball, Cricket:
		return Sport(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSport, raw)
	}
}

func (s Sport) String() string {
	return string(s)
}

// Valid reports whether s is one of the supported sports.
func (s Sport) Valid() bool {
	switch s {
	case Football, Basketball, Cricket:
		return true
	}
	return false
}

var seasonPattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// CurrentSeason is the basketball season label for now, "{year-1}-{year}".
func CurrentSeason(now time.Time) string {
	year := now.Year()
	return fmt.Sprintf("%d-%d", year-1, year)
}

// ValidSeason reports whether raw looks like "2023-2024".
func ValidSeason(raw string) bool {
	return seasonPattern.MatchString(raw)
}
