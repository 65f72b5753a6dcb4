package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roamops/roamops/application/port/inbound"
	"github.com/roamops/roamops/application/usecase/auth"
	"github.com/roamops/roamops/domain"
	"github.com/roamops/roamops/infrastructure/http/middleware"
	"github.com/roamops/roamops/infrastructure/http/response"
	"github.com/roamops/roamops/infrastructure/http/validator"
)

type AuthHandler struct {
	authUseCase inbound.AuthUseCase
}

func NewAuthHandler(authUseCase inbound.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req inbound.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if !validator.ValidateEmail(req.Email) {
		response.UnprocessableEntity(w, "Invalid email format")
		return
	}
	if !validator.ValidateRequired(req.Password) {
		response.UnprocessableEntity(w, "Password is required")
		return
	}

	loginRes, err := h.authUseCase.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTooManyAttempts):
			response.Error(w, http.StatusTooManyRequests, err.Error())
		case errors.Is(err, auth.ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		default:
			response.InternalServerError(w, "Internal server error")
		}
		return
	}

	response.Success(w, http.StatusOK, "success", loginRes)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "User not authenticated")
		return
	}

	meRes, err := h.authUseCase.Me(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			response.NotFound(w, "Employee not found")
			return
		}
		response.InternalServerError(w, "Internal server error")
		return
	}

	response.Success(w, http.StatusOK, "success", meRes)
}
