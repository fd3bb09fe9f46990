package models

// Request bodies for the booking endpoints. Required fields carry a
// `validate:"required"` tag; the handler layer rejects a missing field
// with HTTP 400 before anything reaches the table store.
//
// Required numeric fields are pointers: zero is a legitimate value for
// all of them (a kids-only booking has adults 0, a fully discounted one
// has total_price 0), so only a key that is absent from the body may be
// rejected. Validation runs before Record, so Record dereferences freely.
//
// Each request knows how to shape itself into a table-store record via
// its Record method. Record always stamps user_id from the verified
// principal — a user_id present in the request body is ignored, which
// prevents clients from booking on behalf of someone else.

// BookTicketRequest is the body of POST /book-ticket.
type BookTicketRequest struct {
	ParkID     *int     `json:"park_id" validate:"required"`
	TicketType string   `json:"ticket_type" validate:"required"`
	Date       string   `json:"date" validate:"required"`
	TimeSlot   string   `json:"time_slot" validate:"required"`
	Adults     *int     `json:"adults" validate:"required"`
	Kids       int      `json:"kids"`
	Seniors    int      `json:"seniors"`
	TotalPrice *float64 `json:"total_price" validate:"required"`
}

// Record builds the bookings insert payload. New bookings always start
// in the "pending" status; payment confirmation moves them on later.
func (r BookTicketRequest) Record(userID string) map[string]any {
	return map[string]any{
		"user_id":     userID,
		"park_id":     *r.ParkID,
		"ticket_type": r.TicketType,
		"date":        r.Date,
		"time_slot":   r.TimeSlot,
		"adults":      *r.Adults,
		"kids":        r.Kids,
		"seniors":     r.Seniors,
		"total_price": *r.TotalPrice,
		"status":      "pending",
	}
}

// BookAddOnRequest is the body of POST /book-add-on.
type BookAddOnRequest struct {
	BookingID  *int     `json:"booking_id" validate:"required"`
	AddOnID    *int     `json:"add_on_id" validate:"required"`
	Quantity   *int     `json:"quantity" validate:"required"`
	TotalPrice *float64 `json:"total_price" validate:"required"`
}

// Record builds the add_on_bookings insert payload. Add-on bookings
// attach to an existing ticket booking and carry no status of their own.
func (r BookAddOnRequest) Record(userID string) map[string]any {
	return map[string]any{
		"user_id":     userID,
		"booking_id":  *r.BookingID,
		"add_on_id":   *r.AddOnID,
		"quantity":    *r.Quantity,
		"total_price": *r.TotalPrice,
	}
}

// BookAccommodationRequest is the body of POST /book-accommodation.
type BookAccommodationRequest struct {
	AccommodationID *int     `json:"accommodation_id" validate:"required"`
	CheckIn         string   `json:"check_in" validate:"required"`
	CheckOut        string   `json:"check_out" validate:"required"`
	Guests          *int     `json:"guests" validate:"required"`
	TotalPrice      *float64 `json:"total_price" validate:"required"`
}

// Record builds the accommodation_bookings insert payload.
func (r BookAccommodationRequest) Record(userID string) map[string]any {
	return map[string]any{
		"user_id":          userID,
		"accommodation_id": *r.AccommodationID,
		"check_in":         r.CheckIn,
		"check_out":        r.CheckOut,
		"guests":           *r.Guests,
		"total_price":      *r.TotalPrice,
		"status":           "pending",
	}
}

// BookTransportRequest is the body of POST /book-transport.
type BookTransportRequest struct {
	TransportID *int     `json:"transport_id" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	Time        string   `json:"time" validate:"required"`
	Passengers  *int     `json:"passengers" validate:"required"`
	TotalPrice  *float64 `json:"total_price" validate:"required"`
}

// Record builds the transport_bookings insert payload.
func (r BookTransportRequest) Record(userID string) map[string]any {
	return map[string]any{
		"user_id":      userID,
		"transport_id": *r.TransportID,
		"date":         r.Date,
		"time":         r.Time,
		"passengers":   *r.Passengers,
		"total_price":  *r.TotalPrice,
		"status":       "pending",
	}
}

// ApplyPromoRequest is the body of POST /apply-promo.
type ApplyPromoRequest struct {
	PromoCode string `json:"promo_code" validate:"required"`
}
