package main

import (
	"net/http"

	"github.com/treinapp/treinapp/internal/training"
)

// profileGET returns the stored profile for the current session.
func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	profile, err := app.trainingService.Profile(r.Context())
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, profile)
}

// profilePUT replaces the stored profile. The profile's identity and
// creation time come from the session and the existing document, so the
// request body only carries the answers.
func (app *application) profilePUT(w http.ResponseWriter, r *http.Request) {
	var profile training.Profile
	if err := decodeJSON(r, &profile); err != nil {
		app.badRequest(w, r, "invalid request body")
		return
	}

	saved, err := app.trainingService.SaveProfile(r.Context(), profile)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, saved)
}
