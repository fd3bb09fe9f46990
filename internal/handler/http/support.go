package http

import (
	"net/http"

	"github.com/parkchat/parkchat-api/internal/utils"
)

// listFAQs returns the full FAQ table. The only unscoped read in the
// API: FAQs are global, public-knowledge content.
func (h *Handler) listFAQs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := h.store.Query(ctx, "faqs", nil)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

// listParkRules returns the visitor rules of one park.
func (h *Handler) listParkRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters, err := requireQuery(r, "park_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rows, err := h.store.Query(ctx, "park_rules", filters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}
