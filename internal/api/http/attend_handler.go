package http

import (
	"net/http"

	"clubhub-backend/internal/service"
)

type AttendHandler struct {
	attendanceSvc service.AttendanceService
}

func NewAttendHandler(attendanceSvc service.AttendanceService) *AttendHandler {
	return &AttendHandler{attendanceSvc: attendanceSvc}
}

func (h *AttendHandler) Apply(w http.ResponseWriter, r *http.Request) {
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

	attend, err := h.attendanceSvc.ApplyToAttend(r.Context(), userID, activityID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, attend)
}

func (h *AttendHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	userID, err := CallerID(r.Context())
	if err != nil {
		writeErrorMessage(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	attendID, ok := pathID(r, "attendID")
	if !ok {
		writeErrorMessage(w, http.StatusBadRequest, "invalid attend id")
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

	attend, err := h.attendanceSvc.ResolveAttendRequest(r.Context(), userID, attendID, decision)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attend)
}

func (h *AttendHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
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

	attend, err := h.attendanceSvc.CheckIn(r.Context(), userID, activityID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attend)
}

type bulkRollcallRequest struct {
	AttendedIDs []int32 `json:"attended_ids"`
}

// BulkRollcall lets the chief overwrite the attended set in one call. IDs
// outside the submitted list fall back to accepted.
func (h *AttendHandler) BulkRollcall(w http.ResponseWriter, r *http.Request) {
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
	var req bulkRollcallRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	attends, err := h.attendanceSvc.BulkRollcall(r.Context(), userID, activityID, req.AttendedIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attends)
}

func (h *AttendHandler) Participants(w http.ResponseWriter, r *http.Request) {
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

	attends, err := h.attendanceSvc.ListParticipants(r.Context(), userID, activityID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attends)
}
