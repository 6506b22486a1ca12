package http

import (
	"net/http"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/service"
)

type ActivityHandler struct {
	activitySvc service.ActivityService
}

func NewActivityHandler(activitySvc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activitySvc: activitySvc}
}

type publishActivityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *ActivityHandler) Publish(w http.ResponseWriter, r *http.Request) {
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
	var req publishActivityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeErrorMessage(w, http.StatusBadRequest, "activity name is required")
		return
	}

	activity, err := h.activitySvc.PublishActivity(r.Context(), userID, clubID, req.Name, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

func (h *ActivityHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	activityID, ok := pathID(r, "activityID")
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "invalid activity id")
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

	activity, err := h.activitySvc.ResolveActivity(r.Context(), userID, activityID, decision)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

func (h *ActivityHandler) StartRollcall(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	activityID, ok := pathID(r, "activityID")
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	activity, err := h.activitySvc.StartRollcall(r.Context(), userID, activityID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

type finishActivityRequest struct {
	Conclusion string `json:"conclusion"`
}

func (h *ActivityHandler) Finish(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	activityID, ok := pathID(r, "activityID")
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "invalid activity id")
		return
	}
	var req finishActivityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	activity, err := h.activitySvc.FinishActivity(r.Context(), userID, activityID, req.Conclusion)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

type activityDetailResponse struct {
	Activity *domain.Activity `json:"activity"`
	Attend   *domain.Attend   `json:"attend,omitempty"`
}

func (h *ActivityHandler) Detail(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	activityID, ok := pathID(r, "activityID")
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	activity, attend, err := h.activitySvc.GetActivity(r.Context(), userID, activityID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activityDetailResponse{Activity: activity, Attend: attend})
}

// List serves the member's activity feed. ?category= selects one of
// ongoing, attended, reviewing, rejected or all; ongoing is the default.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	page, pageSize := pagination(r)
	category := r.URL.Query().Get("category")
	if category == "" {
		category = "ongoing"
	}

	activities, total, err := h.activitySvc.ListActivities(r.Context(), userID, category, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse{Items: activities, Total: total, Page: page})
}
