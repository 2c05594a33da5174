package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sushihentaime/inkpost/internal/userservice"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthCheckHandler)

	// session
	router.HandlerFunc(http.MethodGet, "/v1/session", app.sessionHandler)
	router.HandlerFunc(http.MethodPost, "/v1/session/login", app.loginHandler)
	router.HandlerFunc(http.MethodPost, "/v1/session/signup", app.signupHandler)
	router.HandlerFunc(http.MethodPost, "/v1/session/logout", app.logoutHandler)

	// user service
	router.HandlerFunc(http.MethodGet, "/v1/users", app.requirePermission(app.listUsersHandler, userservice.PermissionManageUsers))
	router.HandlerFunc(http.MethodGet, "/v1/users/:id", app.getUserHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/users/:id", app.requireAuthUser(app.updateProfileHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/users/:id", app.requirePermission(app.deleteUserHandler, userservice.PermissionManageUsers))
	router.HandlerFunc(http.MethodPut, "/v1/users/:id/role", app.requirePermission(app.updateRoleHandler, userservice.PermissionManageUsers))
	router.HandlerFunc(http.MethodPut, "/v1/users/:id/subscribe", app.requireAuthUser(app.subscribeHandler))
	router.HandlerFunc(http.MethodPost, "/v1/users/:id/follow", app.requireAuthUser(app.followHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/users/:id/follow", app.requireAuthUser(app.unfollowHandler))
	router.HandlerFunc(http.MethodGet, "/v1/users/:id/posts", app.userPostsHandler)

	// blog service
	router.HandlerFunc(http.MethodGet, "/v1/posts", app.listPostsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/posts", app.requirePermission(app.createPostHandler, userservice.PermissionWritePost))
	router.HandlerFunc(http.MethodGet, "/v1/posts/:id", app.getPostHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/posts/:id", app.requirePermission(app.updatePostHandler, userservice.PermissionWritePost))
	router.HandlerFunc(http.MethodDelete, "/v1/posts/:id", app.requirePermission(app.deletePostHandler, userservice.PermissionWritePost))
	router.HandlerFunc(http.MethodPut, "/v1/posts/:id/reaction", app.requireAuthUser(app.addReactionHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/posts/:id/reaction", app.requireAuthUser(app.removeReactionHandler))
	router.HandlerFunc(http.MethodGet, "/v1/posts/:id/bookmark", app.requireAuthUser(app.getBookmarkHandler))
	router.HandlerFunc(http.MethodPut, "/v1/posts/:id/bookmark", app.requireAuthUser(app.addBookmarkHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/posts/:id/bookmark", app.requireAuthUser(app.removeBookmarkHandler))
	router.HandlerFunc(http.MethodGet, "/v1/search", app.searchPostsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/bookmarks", app.requireAuthUser(app.listBookmarksHandler))
	router.HandlerFunc(http.MethodGet, "/v1/feed", app.requireAuthUser(app.feedHandler))
	router.HandlerFunc(http.MethodGet, "/v1/categories", app.listCategoriesHandler)
	router.HandlerFunc(http.MethodPost, "/v1/categories", app.requirePermission(app.addCategoryHandler, userservice.PermissionManageCategories))
	router.HandlerFunc(http.MethodDelete, "/v1/categories/:name", app.requirePermission(app.deleteCategoryHandler, userservice.PermissionManageCategories))

	// comment service
	router.HandlerFunc(http.MethodGet, "/v1/posts/:id/comments", app.listCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/posts/:id/comments", app.requireAuthUser(app.addCommentHandler))
	router.HandlerFunc(http.MethodPost, "/v1/comments/:id/report", app.requireAuthUser(app.reportCommentHandler))
	router.HandlerFunc(http.MethodGet, "/v1/moderation/comments", app.requirePermission(app.listReportedCommentsHandler, userservice.PermissionModerateComments))
	router.HandlerFunc(http.MethodPut, "/v1/moderation/comments/:id/approve", app.requirePermission(app.approveCommentHandler, userservice.PermissionModerateComments))
	router.HandlerFunc(http.MethodDelete, "/v1/moderation/comments/:id", app.requirePermission(app.deleteCommentHandler, userservice.PermissionModerateComments))

	// notification service
	router.HandlerFunc(http.MethodGet, "/v1/notifications", app.requireAuthUser(app.listNotificationsHandler))
	router.HandlerFunc(http.MethodPut, "/v1/notifications/read", app.requireAuthUser(app.markNotificationsReadHandler))

	// analytics service
	router.HandlerFunc(http.MethodGet, "/v1/analytics/totals", app.requirePermission(app.analyticsTotalsHandler, userservice.PermissionViewAnalytics))
	router.HandlerFunc(http.MethodGet, "/v1/analytics/top-posts", app.requirePermission(app.topPostsHandler, userservice.PermissionViewAnalytics))
	router.HandlerFunc(http.MethodGet, "/v1/analytics/posts/:id", app.requirePermission(app.postAnalyticsHandler, userservice.PermissionViewAnalytics))

	return app.recoverPanic(app.logRequest(app.enableCORS(app.rateLimit(app.authenticate(router)))))
}
