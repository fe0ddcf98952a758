package job

import (
	"context"
	"log"
	"time"

	"deskboard/internal/widget"

	"go.opentelemetry.io/otel/trace"
)

// DashboardPoller owns the lifecycle of every polling widget: it starts
// them with a small stagger so the initial fetch burst does not hit all
// providers at once, and tears them down when the context is cancelled.
type DashboardPoller struct {
	tracer   trace.Tracer
	registry *widget.Registry
	stagger  time.Duration
}

func NewDashboardPoller(tracer trace.Tracer, registry *widget.Registry, stagger time.Duration) *DashboardPoller {
	return &DashboardPoller{
		tracer:   tracer,
		registry: registry,
		stagger:  stagger,
	}
}

// Start launches all widgets. Blocks until ctx is cancelled, then stops
// every widget on the way out.
func (p *DashboardPoller) Start(ctx context.Context) {
	log.Println("Dashboard poller starting...")

	for i, w := range p.registry.All() {
		delay := time.Duration(i) * p.stagger
		go func(w widget.Widget, delay time.Duration) {
			if delay > 0 {
				select {
				case <-ctx.Done():
					return
				case <-time.After(delay):
				}
			}
			w.Start(ctx)
		}(w, delay)
	}

	<-ctx.Done()

	for _, w := range p.registry.All() {
		w.Stop()
	}
	log.Println("Dashboard poller stopped")
}
