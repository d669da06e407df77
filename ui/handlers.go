package ui

import (
	"encoding/json"
	"net/http"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"htnscope/domain/core"
	"htnscope/internal/errors"
	"htnscope/internal/narrative"
)

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"records": a.svc.Table().Len(),
		"dropped": a.svc.LoadReport().Dropped,
	})
}

func (a *App) handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Options())
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	f := a.parseFilter(r)
	writeJSON(w, http.StatusOK, a.svc.Summary(f))
}

func (a *App) handleBreakdowns(w http.ResponseWriter, r *http.Request) {
	f := a.parseFilter(r)
	writeJSON(w, http.StatusOK, a.svc.Breakdowns(f))
}

func (a *App) handleCorrelations(w http.ResponseWriter, r *http.Request) {
	f := a.parseFilter(r)
	pairs := a.svc.Correlations(f)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pairs": pairs,
		// The UI shows "no strong correlations" off this flag.
		"empty": len(pairs) == 0,
	})
}

func (a *App) handleScatter(w http.ResponseWriter, r *http.Request) {
	f := a.parseFilter(r)
	x := r.URL.Query().Get("x")
	y := r.URL.Query().Get("y")
	if x == "" || y == "" {
		writeError(w, http.StatusBadRequest, errors.InvalidInput("x and y column parameters are required"))
		return
	}

	points, err := a.svc.Scatter(f, x, y)
	if err != nil {
		if core.IsColumnNotFoundError(err) {
			writeError(w, http.StatusNotFound, errors.NotFound("column"))
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"points": points, "x": x, "y": y})
}

func (a *App) handleCohort(w http.ResponseWriter, r *http.Request) {
	f := a.parseFilter(r)
	rows := a.svc.Cohort(f, a.cohortCap)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows":  rows,
		"total": len(rows),
		"cap":   a.cohortCap,
	})
}

func (a *App) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	f := a.parseFilter(r)
	writeJSON(w, http.StatusOK, a.svc.Snapshot(f))
}

// handleStoryFragment renders the cohort narrative as an HTML fragment
// for the dashboard's story box.
func (a *App) handleStoryFragment(w http.ResponseWriter, r *http.Request) {
	f := a.parseFilter(r)
	story := narrative.Story(a.svc.Summary(f))

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	fragment := markdown.ToHTML([]byte(story), p, renderer)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(fragment)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
