package mux

import (
	"errors"
	"net/http"

	"holdem-server/internal/jwt"
	"holdem-server/pkg/model"
)

type playerAuthPayload struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type playerAuthResponse struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// postPlayerAuth logs a player in, registering the name on first use
func (m *Mux) postPlayerAuth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp playerAuthPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		player, err := m.players.Authenticate(pp.Name, pp.Password)
		if err != nil {
			var ue model.UserError
			if errors.As(err, &ue) {
				if ue == model.ErrInvalidNameOrPassword {
					writeJSONError(w, http.StatusUnauthorized, err)
				} else {
					writeJSONError(w, http.StatusBadRequest, err)
				}
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		token, err := jwt.Sign(player.Name)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, playerAuthResponse{
			Name:  player.Name,
			Token: token,
		})
	}
}
