package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/internal/utils"
)

// listMyBookings returns the ticket bookings of the authenticated user.
// The user_id filter always comes from the verified principal, so one
// user can never list another's bookings.
func (h *Handler) listMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rows, err := h.store.Query(ctx, "bookings", map[string]string{"user_id": principal.ID})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

// cancelBooking moves one of the caller's confirmed bookings to the
// cancelled status. Pending bookings are not cancellable here: they
// expire on their own when payment never completes.
func (h *Handler) cancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, err := principalFrom(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	bookingID := chi.URLParam(r, "bookingID")
	rows, err := h.store.Update(ctx, "bookings",
		map[string]string{
			"id":      bookingID,
			"user_id": principal.ID,
			"status":  "confirmed",
		},
		map[string]any{"status": "cancelled"},
	)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if len(rows) == 0 {
		// not found, not owned by the caller, or not in a cancellable state
		_, _ = utils.WriteJSONError(w, "Booking not found, not cancellable, or permission denied", http.StatusNotFound)
		return
	}

	log.Info().Str("booking_id", bookingID).Str("user_id", principal.ID).Msg("booking cancelled")
	_, _ = utils.WriteJSON(w, map[string]any{"success": true, "message": "Booking cancelled."}, http.StatusOK)
}
