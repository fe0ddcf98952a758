package widget

// Registry holds the dashboard's widgets in display order.
type Registry struct {
	order   []string
	widgets map[string]Widget
}

func NewRegistry() *Registry {
	return &Registry{widgets: make(map[string]Widget)}
}

func (r *Registry) Add(w Widget) {
	if _, exists := r.widgets[w.Name()]; !exists {
		r.order = append(r.order, w.Name())
	}
	r.widgets[w.Name()] = w
}

func (r *Registry) Get(name string) (Widget, bool) {
	w, ok := r.widgets[name]
	return w, ok
}

// All returns widgets in registration order.
func (r *Registry) All() []Widget {
	out := make([]Widget, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.widgets[name])
	}
	return out
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
