package main

import (
	"net/http"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	var (
		base = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.timeout(next)))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(app.assignUser(base(next)))))
		}
	)

	mux.Handle("POST /api/onboarding/complete", session(http.HandlerFunc(app.onboardingCompletePOST)))
	mux.Handle("POST /api/onboarding/{step}", session(http.HandlerFunc(app.onboardingStepPOST)))

	mux.Handle("GET /api/profile", session(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile", session(http.HandlerFunc(app.profilePUT)))

	mux.Handle("POST /api/programs", session(http.HandlerFunc(app.programGeneratePOST)))
	mux.Handle("POST /api/programs/ai", session(http.HandlerFunc(app.programAIPOST)))
	mux.Handle("GET /api/programs/current", session(http.HandlerFunc(app.programCurrentGET)))
	mux.Handle("POST /api/programs/current/feedback", session(http.HandlerFunc(app.programFeedbackPOST)))

	mux.Handle("GET /api/nutrition", session(http.HandlerFunc(app.nutritionGET)))

	mux.Handle("GET /api/export", session(http.HandlerFunc(app.exportGET)))

	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	mux.Handle("GET /exercises/{id}", session(http.HandlerFunc(app.exerciseInfoGET)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	return app.crossOrigin(mux)
}
