// internal/handler/internship.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/garasilabs/maganghub/internal/middleware"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/service"
)

type InternshipHandler struct {
	internshipService *service.InternshipService
	userService       *service.UserService
}

func NewInternshipHandler(internshipService *service.InternshipService, userService *service.UserService) *InternshipHandler {
	return &InternshipHandler{
		internshipService: internshipService,
		userService:       userService,
	}
}

// ListHandler returns postings, narrowed by the search page's query
// parameters when present.
func (h *InternshipHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := service.InternshipFilter{
		Query:    query.Get("q"),
		Location: query.Get("location"),
		JobType:  model.JobType(query.Get("job_type")),
		Field:    query.Get("field"),
	}

	internships, err := h.internshipService.Filter(r.Context(), filter)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, internships)
}

func (h *InternshipHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid internship id")
		return
	}

	internship, err := h.internshipService.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, internship)
}

// LocationsHandler feeds the search page's location dropdown.
func (h *InternshipHandler) LocationsHandler(w http.ResponseWriter, r *http.Request) {
	locations, err := h.internshipService.Locations(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, locations)
}

// CreateHandler posts a new internship owned by the calling company.
func (h *InternshipHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	companyID, err := claims.UserID()
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var input service.CreateInternshipInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	internship, err := h.internshipService.Create(r.Context(), input, companyID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, internship)
}

// MineHandler lists the calling company's own postings.
func (h *InternshipHandler) MineHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	companyID, err := claims.UserID()
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	internships, err := h.internshipService.ListByCompany(r.Context(), companyID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, internships)
}

// DeleteHandler removes a posting and its applications.
func (h *InternshipHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	actorID, err := claims.UserID()
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid internship id")
		return
	}

	actor, err := h.userService.GetUser(r.Context(), actorID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	if err := h.internshipService.Delete(r.Context(), id, actor); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
