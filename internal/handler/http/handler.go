package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/parkchat/parkchat-api/internal/auth"
	"github.com/parkchat/parkchat-api/internal/logger"
	"github.com/parkchat/parkchat-api/internal/qr"
	"github.com/parkchat/parkchat-api/internal/store"
)

type Handler struct {
	verifier auth.Verifier
	store    store.Gateway
	qr       qr.Encoder

	validate *validator.Validate
	logger   *logger.Logger
}

func NewHandler(verifier auth.Verifier, gateway store.Gateway, encoder qr.Encoder, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		verifier: verifier,
		store:    gateway,
		qr:       encoder,
		validate: newBodyValidator(),
		logger:   logger,
	}
}

// newBodyValidator builds the validator used for request bodies. Field
// names are resolved through json tags so that validation failures are
// reported in the client's vocabulary ("total_price", not "TotalPrice").
func newBodyValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
