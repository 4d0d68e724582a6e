package main

import (
	"net/http"

	"github.com/treinapp/treinapp/internal/errors"
	"github.com/treinapp/treinapp/internal/nutrition"
	"github.com/treinapp/treinapp/internal/ptr"
	"github.com/treinapp/treinapp/internal/training"
)

// exportResponse bundles every document stored for a user.
type exportResponse struct {
	Profile   *training.Profile         `json:"profile,omitempty"`
	Program   *training.ProgramDocument `json:"program,omitempty"`
	Nutrition *nutrition.PlanDocument   `json:"nutrition,omitempty"`
}

// exportGET returns all data stored for the current session's user so they
// can take it elsewhere.
func (app *application) exportGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var export exportResponse

	profile, err := app.trainingService.Profile(ctx)
	switch {
	case err == nil:
		export.Profile = ptr.Ref(profile)
	case !errors.Is(err, training.ErrNotFound):
		app.serverError(w, r, err)
		return
	}

	program, err := app.trainingService.CurrentProgram(ctx)
	switch {
	case err == nil:
		export.Program = ptr.Ref(program)
	case !errors.Is(err, training.ErrNotFound):
		app.serverError(w, r, err)
		return
	}

	plan, err := app.nutritionService.Plan(ctx)
	switch {
	case err == nil:
		export.Nutrition = ptr.Ref(plan)
	case !errors.Is(err, nutrition.ErrNotFound):
		app.serverError(w, r, err)
		return
	}

	app.writeJSON(w, r, http.StatusOK, export)
}
