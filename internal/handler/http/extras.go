package http

import (
	"net/http"

	"github.com/parkchat/parkchat-api/internal/utils"
	"github.com/parkchat/parkchat-api/models"
)

// The endpoints below are placeholders for features that never shipped.
// They validate their inputs like real handlers but return fixed payloads.

// predictCrowd answers with a fixed medium crowd level.
func (h *Handler) predictCrowd(w http.ResponseWriter, r *http.Request) {
	if _, err := requireQuery(r, "park_id", "date"); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, map[string]string{"prediction": "medium"}, http.StatusOK)
}

// recommendRides answers with an empty recommendation list.
func (h *Handler) recommendRides(w http.ResponseWriter, r *http.Request) {
	if _, err := requireQuery(r, "age", "interests"); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{"recommendations": []models.Row{}}, http.StatusOK)
}

// processPayment answers with a fixed successful transaction.
func (h *Handler) processPayment(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]string{
		"status":         "success",
		"transaction_id": "123456",
	}, http.StatusOK)
}

// applyPromo answers with a fixed 10% discount for any promo code.
func (h *Handler) applyPromo(w http.ResponseWriter, r *http.Request) {
	var req models.ApplyPromoRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, map[string]float64{"discount": 0.1}, http.StatusOK)
}
