package client

import (
	"testing"
	"time"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{name: "seconds", ago: 30 * time.Second, want: "just now"},
		{name: "under a minute", ago: 59 * time.Second, want: "just now"},
		{name: "minutes", ago: 5 * time.Minute, want: "5 minute(s) ago"},
		{name: "one minute", ago: time.Minute, want: "1 minute(s) ago"},
		{name: "floor to hours", ago: 90 * time.Minute, want: "1 hour(s) ago"},
		{name: "hours", ago: 23 * time.Hour, want: "23 hour(s) ago"},
		{name: "floor to days", ago: 50 * time.Hour, want: "2 day(s) ago"},
		{name: "many days", ago: 10 * 24 * time.Hour, want: "10 day(s) ago"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			timestamp := now.Add(-tc.ago).Format(time.RFC3339)
			if got := TimeAgo(timestamp, now); got != tc.want {
				t.Errorf("TimeAgo(-%v) = %q, want %q", tc.ago, got, tc.want)
			}
		})
	}
}

func TestTimeAgoUnparseable(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	if got := TimeAgo("not-a-timestamp", now); got != "not-a-timestamp" {
		t.Errorf("TimeAgo on bad input = %q, want the input back", got)
	}
}
