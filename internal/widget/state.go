package widget

import "time"

// Status is the renderable snapshot of one widget: last good data, the
// in-flight flag, the last cycle's error, and when data last changed.
// Error and data can be set at once; stale data survives a failed cycle
// and renderers decide precedence (error first in the reference view).
type Status struct {
	Name             string     `json:"name"`
	Data             any        `json:"data"`
	Loading          bool       `json:"loading"`
	Error            string     `json:"error,omitempty"`
	LastUpdated      *time.Time `json:"lastUpdated,omitempty"`
	LastUpdatedLabel string     `json:"lastUpdatedLabel,omitempty"`
}
