package http

import "net/http"

func (h *Handler) withDiscoveryMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.ObserveDiscoveryRequest(status)
	})
}
