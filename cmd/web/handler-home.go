package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/treinapp/treinapp/internal/contexthelpers"
)

// home renders a minimal index linking to every catalog exercise.
func (app *application) home(w http.ResponseWriter, r *http.Request) {
	var body strings.Builder
	body.WriteString("<h1>Treinapp</h1>\n<ul>\n")
	for _, exercise := range app.trainingService.Exercises() {
		fmt.Fprintf(&body, "<li><a class=\"exercise\" href=\"/exercises/%s\">%s</a></li>\n",
			exercise.ID, exercise.Name)
	}
	body.WriteString("</ul>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, pageShell, "Treinapp", contexthelpers.CSPNonce(r.Context()), body.String())
}
