package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/parkchat/parkchat-api/internal/utils"
	"github.com/parkchat/parkchat-api/models"
)

// listAttractions returns the attractions of one park.
func (h *Handler) listAttractions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters, err := requireQuery(r, "park_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rows, err := h.store.Query(ctx, "attractions", filters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

// getAttraction returns one attraction by id, or an empty object when the
// id matches nothing. An unknown id is not an error: the frontend probes
// ids optimistically while rendering ride details.
func (h *Handler) getAttraction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	attractionID := chi.URLParam(r, "attractionID")
	rows, err := h.store.Query(ctx, "attractions", map[string]string{"id": attractionID})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if len(rows) == 0 {
		_, _ = utils.WriteJSON(w, models.Row{}, http.StatusOK)
		return
	}

	_, _ = utils.WriteJSON(w, rows[0], http.StatusOK)
}
