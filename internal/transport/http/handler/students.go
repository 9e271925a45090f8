package handler

import (
	"encoding/json"
	"net/http"

	"github.com/elearn-api/internal/application/student"
	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/validate"
	"github.com/elearn-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// StudentHandler handles student-information endpoints. Admin routes see
// every record; the /user routes only see the caller's own.
type StudentHandler struct {
	svc student.Service
}

func NewStudentHandler(svc student.Service) *StudentHandler {
	return &StudentHandler{svc: svc}
}

func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	search, limit, cursor := listParams(r)
	infos, next, err := h.svc.List(r.Context(), search, limit, cursor)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PageEnvelope{Data: infos, NextCursor: next})
}

func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.StudentInfoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *StudentHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var input domain.StudentInfoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.Replace(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *StudentHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateStudentInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.svc.Patch(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "student information deleted"})
}

// ListOwn returns the caller's own student-information records.
func (h *StudentHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	infos, err := h.svc.ListByUser(r.Context(), claims.UserID)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PageEnvelope{Data: infos})
}

// GetOwn returns one record, but only if it belongs to the caller. A
// foreign record reads as absent rather than forbidden.
func (h *StudentHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	info, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	if info.UserID != claims.UserID {
		writeError(w, http.StatusNotFound, "student information not found")
		return
	}
	writeJSON(w, http.StatusOK, info)
}
