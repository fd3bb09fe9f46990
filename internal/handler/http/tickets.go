package http

import (
	"net/http"

	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/internal/utils"
	"github.com/parkchat/parkchat-api/models"
)

// listTicketTypes returns the ticket types offered by one park.
func (h *Handler) listTicketTypes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filters, err := requireQuery(r, "park_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rows, err := h.store.Query(ctx, "ticket_types", filters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int("rows", len(rows)).Msg("ticket types fetched")
	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

// listTimeSlots returns the entry slots of one park on one date.
func (h *Handler) listTimeSlots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters, err := requireQuery(r, "park_id", "date")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rows, err := h.store.Query(ctx, "time_slots", filters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

// bookTicket creates a pending ticket booking for the authenticated user
// and returns the stored row, including the store-generated id.
func (h *Handler) bookTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.BookTicketRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	row, err := h.store.Insert(ctx, "bookings", req.Record(principal.ID))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Any("booking", row).Str("user_id", principal.ID).Msg("ticket booked")
	_, _ = utils.WriteJSON(w, row, http.StatusOK)
}
