package main

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/treinapp/treinapp/internal/contexthelpers"
	"github.com/yuin/goldmark"
)

const pageShell = `<!doctype html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<style nonce="%s">
body { font-family: sans-serif; max-width: 40rem; margin: 0 auto; padding: 1rem; }
</style>
</head>
<body>
<main>
%s</main>
</body>
</html>
`

// exerciseInfoGET renders the catalog entry for one exercise as HTML. The
// description is assembled as markdown and rendered with goldmark.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	exercise, ok := app.trainingService.ExerciseInfo(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", exercise.Name)
	fmt.Fprintf(&md, "**Músculo alvo:** %s\n\n", exercise.TargetMuscle)
	if exercise.Compound {
		md.WriteString("Exercício composto.\n\n")
	}
	if len(exercise.Equipment) > 0 {
		fmt.Fprintf(&md, "**Equipamento:** %s\n\n", strings.Join(exercise.Equipment, ", "))
	}
	if len(exercise.Tips) > 0 {
		md.WriteString("## Dicas\n\n")
		for _, tip := range exercise.Tips {
			fmt.Fprintf(&md, "- %s\n", tip)
		}
	}

	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &body); err != nil {
		app.serverError(w, r, fmt.Errorf("render exercise description: %w", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, pageShell, exercise.Name, contexthelpers.CSPNonce(r.Context()), body.String())
}
