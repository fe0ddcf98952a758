package widget

import (
	"fmt"
	"time"
)

// LastUpdatedLabel renders a refresh timestamp the way the dashboard
// shows it: sub-minute freshness reads "Just now", anything within the
// hour counts minutes, older timestamps fall back to local clock time.
func LastUpdatedLabel(now, updated time.Time) string {
	mins := int(now.Sub(updated).Minutes())
	switch {
	case mins < 1:
		return "Just now"
	case mins == 1:
		return "1 minute ago"
	case mins < 60:
		return fmt.Sprintf("%d minutes ago", mins)
	default:
		return updated.Format("3:04 PM")
	}
}
