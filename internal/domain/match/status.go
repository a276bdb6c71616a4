package match

import "strings"

type Badge string

const (
	BadgeLive      Badge = "LIVE"
	BadgeFinished  Badge = "FINISHED"
	BadgeScheduled Badge = "SCHEDULED"
)

var (
	liveMarkers     = []string{"live", "progress", "1st quarter", "halftime"}
	finishedMarkers = []string{"finished", "final"}
)

// ClassifyStatus buckets a provider status string by case-insensitive
// substring. Live markers are checked first.
func ClassifyStatus(status string) Badge {
	s := strings.ToLower(status)
	if containsAny(s, liveMarkers) {
		return BadgeLive
	}
	if containsAny(s, finishedMarkers) {
		return BadgeFinished
	}
	return BadgeScheduled
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
