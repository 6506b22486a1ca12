package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Club        *ClubHandler
	Application *ApplicationHandler
	Activity    *ActivityHandler
	Attend      *AttendHandler
}

// NewRouter mounts the API. Everything except signup, login and refresh sits
// behind the bearer-token middleware.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", h.Auth.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(auth.Require)

	api.HandleFunc("/me", h.Auth.Me).Methods(http.MethodGet)

	api.HandleFunc("/clubs", h.Club.List).Methods(http.MethodGet)
	api.HandleFunc("/clubs/stats", h.Club.Stats).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{clubID}", h.Club.Detail).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{clubID}", h.Club.Update).Methods(http.MethodPut)
	api.HandleFunc("/clubs/{clubID}/vice", h.Club.AppointVice).Methods(http.MethodPut)

	api.HandleFunc("/applications/create", h.Application.SubmitCreate).Methods(http.MethodPost)
	api.HandleFunc("/applications/create", h.Application.ListMyCreate).Methods(http.MethodGet)
	api.HandleFunc("/applications/join", h.Application.ListMyJoin).Methods(http.MethodGet)
	api.HandleFunc("/admin/create-applications", h.Application.ListCreateForReview).Methods(http.MethodGet)
	api.HandleFunc("/admin/create-applications/{requestID}/resolve", h.Application.ResolveCreate).Methods(http.MethodPut)

	api.HandleFunc("/clubs/{clubID}/join", h.Application.SubmitJoin).Methods(http.MethodPost)
	api.HandleFunc("/clubs/{clubID}/join-applications", h.Application.ListJoinForClub).Methods(http.MethodGet)
	api.HandleFunc("/clubs/{clubID}/join-applications/{requestID}/resolve", h.Application.ResolveJoin).Methods(http.MethodPut)

	api.HandleFunc("/clubs/{clubID}/activities", h.Activity.Publish).Methods(http.MethodPost)
	api.HandleFunc("/activities", h.Activity.List).Methods(http.MethodGet)
	api.HandleFunc("/activities/{activityID}", h.Activity.Detail).Methods(http.MethodGet)
	api.HandleFunc("/admin/activities/{activityID}/resolve", h.Activity.Resolve).Methods(http.MethodPut)
	api.HandleFunc("/activities/{activityID}/rollcall", h.Activity.StartRollcall).Methods(http.MethodPost)
	api.HandleFunc("/activities/{activityID}/rollcall", h.Attend.BulkRollcall).Methods(http.MethodPut)
	api.HandleFunc("/activities/{activityID}/finish", h.Activity.Finish).Methods(http.MethodPut)

	api.HandleFunc("/activities/{activityID}/attend", h.Attend.Apply).Methods(http.MethodPost)
	api.HandleFunc("/activities/{activityID}/checkin", h.Attend.CheckIn).Methods(http.MethodPost)
	api.HandleFunc("/activities/{activityID}/participants", h.Attend.Participants).Methods(http.MethodGet)
	api.HandleFunc("/attends/{attendID}/resolve", h.Attend.Resolve).Methods(http.MethodPut)

	return router
}
