package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ewinters/portfolio-backend/auth"
	"github.com/ewinters/portfolio-backend/errs"
	"github.com/ewinters/portfolio-backend/validation"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	tokens    *auth.Service
}

func newAuthHandler(tokens *auth.Service) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tokens:    tokens,
	}
}

// login verifies the admin credentials and returns a signed token
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds validation.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		if err := creds.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.tokens.Login(creds.Username, creds.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"token": token})
	}
}
