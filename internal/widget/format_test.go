package widget

import (
	"testing"
	"time"
)

func TestLastUpdatedLabel(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.Local)

	cases := []struct {
		age  time.Duration
		want string
	}{
		{30 * time.Second, "Just now"},
		{90 * time.Second, "1 minute ago"},
		{10 * time.Minute, "10 minutes ago"},
		{59 * time.Minute, "59 minutes ago"},
	}
	for _, c := range cases {
		if got := LastUpdatedLabel(now, now.Add(-c.age)); got != c.want {
			t.Fatalf("age %v: got %q, want %q", c.age, got, c.want)
		}
	}
}

func TestLastUpdatedLabelFallsBackToClockTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.Local)
	updated := now.Add(-2 * time.Hour)
	if got := LastUpdatedLabel(now, updated); got != updated.Format("3:04 PM") {
		t.Fatalf("expected clock time, got %q", got)
	}
}
