package http

import (
	"net/http"

	"github.com/parkchat/parkchat-api/internal/utils"
	"github.com/parkchat/parkchat-api/models"
)

// parksCatalog is the fixed set of parks served by the public listing.
// Parks change rarely enough that they ship with the application instead
// of living in the table store.
var parksCatalog = []models.Park{
	{
		ID:          1,
		Name:        "VGP Universal Kingdom",
		Location:    "East Coast Road (ECR), Injambakkam, Chennai",
		Description: "One of the oldest and most popular amusement parks featuring thrilling rides, water parks, and entertainment shows.",
	},
	{
		ID:          2,
		Name:        "Queensland Amusement Park",
		Location:    "Poonamallee High Road, Chennai",
		Description: "A family-friendly amusement park with exciting rides, water slides, and entertainment options for all ages.",
	},
	{
		ID:          3,
		Name:        "MGM Dizzee World",
		Location:    "East Coast Road, Muttukadu, Chennai",
		Description: "A modern amusement park featuring high-thrill rides, family attractions, and a water park section.",
	},
	{
		ID:          4,
		Name:        "Wonderla Chennai",
		Location:    "Chennai-Bengaluru Highway, Nehru Nagar, Kelambakkam",
		Description: "South India's largest theme park chain featuring state-of-the-art rides, water attractions, and virtual reality experiences.",
	},
}

// healthCheck answers the public liveness probe.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]string{"message": "Server is working!"}, http.StatusOK)
}

// listParks serves the static park catalog. Public: browsing parks
// requires no account.
func (h *Handler) listParks(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, parksCatalog, http.StatusOK)
}
