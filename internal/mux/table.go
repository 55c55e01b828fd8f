package mux

import (
	"net/http"
)

// getTable returns the table as the authenticated player sees it
func (m *Mux) getTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := m.dealer.PlayerState(playerName(r))
		if state == nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}
