package http

import (
	"net/http"

	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/internal/utils"
	"github.com/parkchat/parkchat-api/models"
)

// listAccommodations returns the stay options near one park.
func (h *Handler) listAccommodations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters, err := requireQuery(r, "park_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rows, err := h.store.Query(ctx, "accommodations", filters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

// bookAccommodation creates a pending accommodation booking for the
// authenticated user.
func (h *Handler) bookAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.BookAccommodationRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	row, err := h.store.Insert(ctx, "accommodation_bookings", req.Record(principal.ID))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Any("accommodation_booking", row).Str("user_id", principal.ID).Msg("accommodation booked")
	_, _ = utils.WriteJSON(w, row, http.StatusOK)
}
