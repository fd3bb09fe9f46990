package http

import (
	"net/http"

	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/internal/utils"
	"github.com/parkchat/parkchat-api/models"
)

// listAddOns returns the purchasable add-ons of one park (meal plans,
// locker rental, photo packages).
func (h *Handler) listAddOns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters, err := requireQuery(r, "park_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rows, err := h.store.Query(ctx, "add_ons", filters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

// bookAddOn attaches an add-on purchase to an existing booking.
func (h *Handler) bookAddOn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.BookAddOnRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	row, err := h.store.Insert(ctx, "add_on_bookings", req.Record(principal.ID))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Any("add_on_booking", row).Str("user_id", principal.ID).Msg("add-on booked")
	_, _ = utils.WriteJSON(w, row, http.StatusOK)
}
