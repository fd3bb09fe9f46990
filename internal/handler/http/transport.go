package http

import (
	"net/http"

	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/internal/utils"
	"github.com/parkchat/parkchat-api/models"
)

// listTransportOptions returns the shuttle and transfer options serving
// one park.
func (h *Handler) listTransportOptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters, err := requireQuery(r, "park_id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rows, err := h.store.Query(ctx, "transport_options", filters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

// bookTransport creates a pending transport booking for the authenticated
// user.
func (h *Handler) bookTransport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.BookTransportRequest
	if err = h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	row, err := h.store.Insert(ctx, "transport_bookings", req.Record(principal.ID))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Any("transport_booking", row).Str("user_id", principal.ID).Msg("transport booked")
	_, _ = utils.WriteJSON(w, row, http.StatusOK)
}
