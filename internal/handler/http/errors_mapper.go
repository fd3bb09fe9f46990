package http

import (
	"errors"
	"net/http"

	"github.com/parkchat/parkchat-api/internal/auth"
	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/internal/utils"
)

// writeError is the single recovery boundary of every handler: any fault
// raised while extracting parameters or calling a collaborator is mapped
// here — once — to a status code and the uniform {"error": msg} body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *ValidationError
	switch {
	case errors.Is(err, auth.ErrNoToken):
		log.Err(err).Msg("request without usable bearer token")
		_, _ = utils.WriteJSONError(w, msgNoToken, http.StatusUnauthorized)
	case errors.Is(err, auth.ErrInvalidToken):
		log.Err(err).Msg("token rejected by identity provider")
		_, _ = utils.WriteJSONError(w, msgInvalidToken, http.StatusForbidden)
	case errors.As(err, &validationErr):
		log.Err(err).Msg("request failed validation")
		_, _ = utils.WriteJSONError(w, validationErr.Message, http.StatusBadRequest)
	default:
		log.Err(err).Msg("unexpected error while handling request")
		_, _ = utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
	}
}
