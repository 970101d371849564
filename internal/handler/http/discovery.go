package http

import (
	"net/http"

	"github.com/MKhiriev/gnap-bootstrap/internal/logger"
	"github.com/MKhiriev/gnap-bootstrap/internal/utils"
)

// getDiscoveryDocument serves the validated service configuration. Until
// the store has been seeded it answers 503 so load balancers keep the
// instance out of rotation.
func (h *Handler) getDiscoveryDocument(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cfg, err := h.services.ConfigService.GetConfig(r.Context())
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.getDiscoveryDocument").Int("status", status).Msg("discovery document unavailable")
		writeError(w, err, status)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	if err = utils.WriteJSON(w, http.StatusOK, cfg); err != nil {
		log.Err(err).Str("func", "*Handler.getDiscoveryDocument").Msg("error writing discovery document")
	}
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	if err := h.store.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("health check failed")
		utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, err error, status int) {
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteJSONError(w, status, message)
}
