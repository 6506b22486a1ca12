package http

import (
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

type ClubHandler struct {
	clubSvc service.ClubService
}

func NewClubHandler(clubSvc service.ClubService) *ClubHandler {
	return &ClubHandler{clubSvc: clubSvc}
}

// List serves both "all clubs" and "my clubs" depending on ?scope=.
func (h *ClubHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	page, pageSize := pagination(r)

	var clubs []domain.Club
	var total int32
	if r.URL.Query().Get("scope") == "all" {
		clubs, total, err = h.clubSvc.ListClubs(r.Context(), page, pageSize)
	} else {
		clubs, total, err = h.clubSvc.ListMyClubs(r.Context(), userID, page, pageSize)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse{Items: clubs, Total: total, Page: page})
}

type clubDetailResponse struct {
	Club    *domain.Club  `json:"club"`
	Members []domain.User `json:"members"`
}

func (h *ClubHandler) Detail(w http.ResponseWriter, r *http.Request) {
	clubID, ok := pathID(r, "clubID")
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "invalid club id")
		return
	}

	club, members, err := h.clubSvc.GetClub(r.Context(), clubID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clubDetailResponse{Club: club, Members: members})
}

type clubUpdateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ClubHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var req clubUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeErrorMessage(w, http.StatusBadRequest, "club name is required")
		return
	}

	club, err := h.clubSvc.UpdateClub(r.Context(), userID, clubID, req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

type appointViceRequest struct {
	UserID int32 `json:"user_id"`
}

func (h *ClubHandler) AppointVice(w http.ResponseWriter, r *http.Request) {
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
	var req appointViceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	club, err := h.clubSvc.AppointVice(r.Context(), userID, clubID, req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, club)
}

func (h *ClubHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.clubSvc.ClubStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
