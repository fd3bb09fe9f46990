package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/parkchat/parkchat-api/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	// All origins on all routes: the API serves browser frontends hosted
	// on arbitrary domains.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/test", h.healthCheck)
		r.Get("/parks", h.listParks)
	})

	// routes behind bearer-token verification
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/ticket-types", h.listTicketTypes)
		r.Get("/time-slots", h.listTimeSlots)
		r.Post("/book-ticket", h.bookTicket)

		r.Get("/attractions", h.listAttractions)
		r.Get("/attractions/{attractionID:[0-9]+}", h.getAttraction)

		r.Get("/add-ons", h.listAddOns)
		r.Post("/book-add-on", h.bookAddOn)

		r.Get("/accommodations", h.listAccommodations)
		r.Post("/book-accommodation", h.bookAccommodation)

		r.Get("/transport-options", h.listTransportOptions)
		r.Post("/book-transport", h.bookTransport)

		r.Get("/my-bookings", h.listMyBookings)
		r.Put("/bookings/{bookingID:[0-9]+}/cancel", h.cancelBooking)
		r.Get("/generate-qr/{bookingID:[0-9]+}", h.generateQR)

		r.Get("/faqs", h.listFAQs)
		r.Get("/park-rules", h.listParkRules)

		r.Get("/crowd-prediction", h.predictCrowd)
		r.Get("/ride-recommendations", h.recommendRides)
		r.Post("/process-payment", h.processPayment)
		r.Post("/apply-promo", h.applyPromo)
	})

	// Unknown (method, path) combinations answer 404 with the uniform
	// error body; a non-integer typed path parameter never matches its
	// route and lands here too.
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSONError(w, msgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSONError(w, msgNotFound, http.StatusNotFound)
	})

	return router
}
