package events

import "github.com/atomicstack/recipebox/internal/logging"

type RouteTracer struct{}

var Route = RouteTracer{}

// Navigate records a route change. reason explains redirects, e.g. the add
// recipe action landing on the category form.
func (RouteTracer) Navigate(from, to, reason string) {
	payload := map[string]interface{}{"from": from, "to": to}
	if reason != "" {
		payload["reason"] = reason
	}
	logging.Trace("route.navigate", payload)
}

func (RouteTracer) Submit(route string, fields map[string]string) {
	logging.Trace("route.submit", map[string]interface{}{"route": route, "fields": fields})
}

func (RouteTracer) Cancel(route string) {
	logging.Trace("route.cancel", map[string]interface{}{"route": route})
}
