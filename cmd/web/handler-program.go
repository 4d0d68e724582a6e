package main

import (
	"net/http"

	"github.com/treinapp/treinapp/internal/training"
)

// programGeneratePOST builds a fresh program from the stored profile and
// makes it the active one.
func (app *application) programGeneratePOST(w http.ResponseWriter, r *http.Request) {
	program, err := app.trainingService.GenerateProgram(r.Context())
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, program)
}

// programAIPOST builds a program through the LLM planner instead of the
// deterministic generator. Available only when an API key is configured.
func (app *application) programAIPOST(w http.ResponseWriter, r *http.Request) {
	if app.aiPlanner == nil {
		app.writeJSON(w, r, http.StatusServiceUnavailable, errorResponse{Error: "ai planner not configured"})
		return
	}

	ctx := r.Context()
	profile, err := app.trainingService.Profile(ctx)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	generated, err := app.aiPlanner.Generate(ctx, profile)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	program, err := app.trainingService.AdoptProgram(ctx, generated)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, program)
}

// programCurrentGET returns the active program document.
func (app *application) programCurrentGET(w http.ResponseWriter, r *http.Request) {
	program, err := app.trainingService.CurrentProgram(r.Context())
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, program)
}

// feedbackRequest carries the session feedback for one workout day.
type feedbackRequest struct {
	DayID    string            `json:"dayId"`
	Feedback training.Feedback `json:"feedback"`
}

// programFeedbackPOST adjusts the named workout day of the active program
// based on how the last session felt.
func (app *application) programFeedbackPOST(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		app.badRequest(w, r, "invalid request body")
		return
	}
	if req.DayID == "" {
		app.badRequest(w, r, "missing dayId")
		return
	}

	program, err := app.trainingService.ApplyFeedback(r.Context(), req.DayID, req.Feedback)
	if err != nil {
		app.handleServiceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, program)
}
