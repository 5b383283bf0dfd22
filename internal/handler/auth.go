// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/garasilabs/maganghub/internal/middleware"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/service"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type SessionResponse struct {
	BaseResponse
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Login(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SessionResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Register(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "user registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SessionResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

type externalAuthRequest struct {
	Role          model.Role `json:"role"`
	ProviderToken string     `json:"provider_token"`
}

// ExternalLoginHandler resolves a provider token through the configured
// identity verifier and logs the matching account in.
func (h *AuthHandler) ExternalLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req externalAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.ExternalLogin(r.Context(), req.Role, req.ProviderToken)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SessionResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

// ExternalRegisterHandler registers a new account from a provider identity.
func (h *AuthHandler) ExternalRegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req externalAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.ExternalRegister(r.Context(), req.Role, req.ProviderToken)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SessionResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

// LogoutHandler holds no server state to clear; sessions end when the client
// discards the token. The endpoint exists for contract parity with the UI.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// MeHandler returns the authenticated principal's record.
func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	userID, err := claims.UserID()
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// UpdateStudentProfileHandler merges profile fields into the calling student.
func (h *AuthHandler) UpdateStudentProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var input service.UpdateStudentProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.UpdateStudentProfile(r.Context(), userID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// UpdateCompanyProfileHandler merges profile fields into the calling company.
func (h *AuthHandler) UpdateCompanyProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var input service.UpdateCompanyProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.UpdateCompanyProfile(r.Context(), userID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

// ListUsersHandler backs the admin dashboard's user counters.
func (h *AuthHandler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// ListCompaniesHandler backs the public company directory and review pages.
func (h *AuthHandler) ListCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	companies, err := h.userService.ListCompanies(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, companies)
}
