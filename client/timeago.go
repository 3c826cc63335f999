package client

import (
	"fmt"
	"time"
)

// TimeAgo renders how long ago an RFC 3339 timestamp was, relative to
// now. Buckets are floored: under a minute is "just now", then
// minutes, hours, and days. An unparseable timestamp comes back as-is
// so the caller still has something to show.
func TimeAgo(timestamp string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return timestamp
	}

	mins := int(now.Sub(t).Minutes())
	if mins < 1 {
		return "just now"
	}
	if mins < 60 {
		return fmt.Sprintf("%d minute(s) ago", mins)
	}

	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%d hour(s) ago", hours)
	}

	return fmt.Sprintf("%d day(s) ago", hours/24)
}
