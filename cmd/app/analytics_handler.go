package main

import "net/http"

func (app *application) analyticsTotalsHandler(w http.ResponseWriter, r *http.Request) {
	totals, err := app.analyticsService.Totals(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"totals": totals}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) topPostsHandler(w http.ResponseWriter, r *http.Request) {
	top, err := app.analyticsService.TopPosts(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"top_posts": top}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) postAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	analytics, err := app.analyticsService.PostAnalytics(r.Context(), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"analytics": analytics}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
