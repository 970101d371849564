package http

import (
	"net/http"

	"github.com/MKhiriev/gnap-bootstrap/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	if err := utils.WriteJSON(w, http.StatusOK, h.buildInfo); err != nil {
		h.logger.Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing build info")
	}
}
