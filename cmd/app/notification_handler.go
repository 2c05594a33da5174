package main

import "net/http"

func (app *application) listNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	notifications, err := app.notificationService.ListNotifications(r.Context(), app.getUserContext(r).ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"notifications": notifications}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) markNotificationsReadHandler(w http.ResponseWriter, r *http.Request) {
	notifications, err := app.notificationService.MarkAllRead(r.Context(), app.getUserContext(r).ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"notifications": notifications}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
