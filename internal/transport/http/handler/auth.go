package handler

import (
	"encoding/json"
	"net/http"

	"github.com/elearn-api/internal/application/auth"
	"github.com/elearn-api/internal/application/session"
	"github.com/elearn-api/internal/pkg/validate"
)

// AuthHandler handles OTP login and session lifecycle endpoints.
type AuthHandler struct {
	authSvc    auth.Service
	sessionSvc session.Service
}

func NewAuthHandler(authSvc auth.Service, sessionSvc session.Service) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, sessionSvc: sessionSvc}
}

type sendOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

type verifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Code        string `json:"code" validate:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.authSvc.SendOTP(r.Context(), req.PhoneNumber); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "OTP sent"})
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.authSvc.VerifyOTP(r.Context(), req.PhoneNumber, req.Code)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{
		Access:  result.AccessToken,
		Refresh: result.RefreshToken,
		User:    result.User,
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	access, err := h.sessionSvc.Refresh(r.Context(), req.Refresh)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AuthEnvelope{Access: access})
}

// Logout revokes the session behind the submitted refresh token. The revoke
// is one-way; 205 tells the client to drop its local state.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.sessionSvc.Revoke(r.Context(), req.Refresh); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusResetContent, MessageEnvelope{Message: "logged out"})
}
