package main

import (
	"net/http"
)

// nutritionGET returns the stored nutrition plan for the current session.
func (app *application) nutritionGET(w http.ResponseWriter, r *http.Request) {
	plan, err := app.nutritionService.Plan(r.Context())
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, plan)
}
