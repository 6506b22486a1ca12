package http

import (
	"net/http"

	"clubhub-backend/internal/service"
)

// ApplicationHandler serves both application workflows: club creation
// (admin-reviewed) and club join (chief/vice-reviewed).
type ApplicationHandler struct {
	creationSvc service.CreationService
	joinSvc     service.JoinService
}

func NewApplicationHandler(creationSvc service.CreationService, joinSvc service.JoinService) *ApplicationHandler {
	return &ApplicationHandler{creationSvc: creationSvc, joinSvc: joinSvc}
}

type createApplicationRequest struct {
	ClubName    string `json:"club_name"`
	Description string `json:"description"`
}

func (h *ApplicationHandler) SubmitCreate(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	var req createApplicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ClubName == "" {
		writeErrorMessage(w, http.StatusBadRequest, "club name is required")
		return
	}

	app, err := h.creationSvc.SubmitCreateRequest(r.Context(), userID, req.ClubName, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) ListMyCreate(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	apps, err := h.creationSvc.ListMyCreateRequests(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

// ListCreateForReview is the administrator's queue, split into reviewing and
// reviewed by ?state=.
func (h *ApplicationHandler) ListCreateForReview(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	page, pageSize := pagination(r)
	reviewing := r.URL.Query().Get("state") != "reviewed"

	apps, total, err := h.creationSvc.ListCreateRequests(r.Context(), userID, reviewing, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse{Items: apps, Total: total, Page: page})
}

type decisionRequest struct {
	Decision string `json:"decision"`
}

func (h *ApplicationHandler) ResolveCreate(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	requestID, ok := pathID(r, "requestID")
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}
	var req decisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	decision, ok := parseDecision(req.Decision)
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "decision must be accept or reject")
		return
	}

	app, err := h.creationSvc.ResolveCreateRequest(r.Context(), userID, requestID, decision)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

type joinApplicationRequest struct {
	Description string `json:"description"`
}

func (h *ApplicationHandler) SubmitJoin(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	clubID, ok := pathID(r, "clubID")
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "invalid club id")
		return
	}
	var req joinApplicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	app, err := h.joinSvc.SubmitJoinRequest(r.Context(), userID, clubID, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) ListMyJoin(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	apps, err := h.joinSvc.ListMyJoinRequests(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) ListJoinForClub(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	clubID, ok := pathID(r, "clubID")
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "invalid club id")
		return
	}
	page, pageSize := pagination(r)
	reviewing := r.URL.Query().Get("state") != "reviewed"

	apps, total, err := h.joinSvc.ListClubJoinRequests(r.Context(), userID, clubID, reviewing, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse{Items: apps, Total: total, Page: page})
}

func (h *ApplicationHandler) ResolveJoin(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	clubID, ok := pathID(r, "clubID")
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "invalid club id")
		return
	}
	requestID, ok := pathID(r, "requestID")
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request id")
		return
	}
	var req decisionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	decision, ok := parseDecision(req.Decision)
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "decision must be accept or reject")
		return
	}

	app, err := h.joinSvc.ResolveJoinRequest(r.Context(), userID, clubID, requestID, decision)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}
