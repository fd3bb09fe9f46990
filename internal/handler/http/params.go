package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/parkchat/parkchat-api/internal/auth"
	"github.com/parkchat/parkchat-api/internal/utils"
	"github.com/parkchat/parkchat-api/models"
)

// principalFrom returns the principal stored by the auth middleware. A
// missing principal means the route was wired without the middleware —
// reported as a missing token rather than a panic.
func principalFrom(r *http.Request) (models.Principal, error) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		return models.Principal{}, auth.ErrNoToken
	}
	return principal, nil
}

// requireQuery extracts the named query parameters, failing with a
// [ValidationError] if any of them is absent or empty. The returned map
// doubles as the equality-filter set for a store query.
func requireQuery(r *http.Request, names ...string) (map[string]string, error) {
	filters := make(map[string]string, len(names))
	for _, name := range names {
		value := r.URL.Query().Get(name)
		if value == "" {
			return nil, errFieldMissing(name)
		}
		filters[name] = value
	}
	return filters, nil
}

// decodeAndValidate decodes the JSON request body into dst and checks its
// `validate` tags. Both malformed JSON and a missing required field come
// back as a [ValidationError] so the caller maps them to HTTP 400.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ValidationError{Message: "Invalid JSON was passed"}
	}

	if err := h.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return errFieldMissing(fieldErrs[0].Field())
		}
		return &ValidationError{Message: err.Error()}
	}

	return nil
}
