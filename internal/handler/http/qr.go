package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/parkchat/parkchat-api/internal/utils"
)

// generateQR renders the entry pass for a booking as a base64 PNG. The
// image encodes "booking_id:<id>"; gate scanners look the id up against
// the store themselves.
func (h *Handler) generateQR(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")

	payload, err := h.qr.EncodeBase64PNG("booking_id:" + bookingID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, map[string]string{"qr_code": payload}, http.StatusOK)
}
