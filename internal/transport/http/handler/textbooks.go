package handler

import (
	"encoding/json"
	"net/http"

	"github.com/elearn-api/internal/application/textbook"
	"github.com/elearn-api/internal/domain"
	"github.com/elearn-api/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// TextbookHandler handles textbook endpoints. Reads resolve a presigned
// download URL for the stored PDF.
type TextbookHandler struct {
	svc textbook.Service
}

func NewTextbookHandler(svc textbook.Service) *TextbookHandler {
	return &TextbookHandler{svc: svc}
}

func (h *TextbookHandler) List(w http.ResponseWriter, r *http.Request) {
	search, limit, cursor := listParams(r)
	books, next, err := h.svc.List(r.Context(), search, limit, cursor)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PageEnvelope{Data: books, NextCursor: next})
}

func (h *TextbookHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *TextbookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.TextbookInput
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

func (h *TextbookHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var input domain.TextbookInput
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

func (h *TextbookHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateTextbookRequest
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

func (h *TextbookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "textbook deleted"})
}
