package main

import (
	"context"
	"net/http"

	"github.com/sushihentaime/inkpost/internal/memdb"
)

type contextKey string

const userContextKey = contextKey("user")

func (app *application) createUserContext(r *http.Request, user *memdb.User) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	return r.WithContext(ctx)
}

func (app *application) getUserContext(r *http.Request) *memdb.User {
	user, ok := r.Context().Value(userContextKey).(*memdb.User)
	if !ok {
		return nil
	}
	return user
}
