package main

import "net/http"

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	notifications := "in-app"
	if app.broker != nil {
		notifications = "broker"
	}

	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment":   app.config.Environment,
			"version":       app.config.Version,
			"notifications": notifications,
		},
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.logger.Error(err.Error())
		http.Error(w, "the server encountered a problem and could not process your request", http.StatusInternalServerError)
	}
}
