// internal/handler/admin.go
package handler

import (
	"net/http"

	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/service"
)

type AdminHandler struct {
	userService        *service.UserService
	internshipService  *service.InternshipService
	applicationService *service.ApplicationService
	reviewService      *service.ReviewService
}

func NewAdminHandler(
	userService *service.UserService,
	internshipService *service.InternshipService,
	applicationService *service.ApplicationService,
	reviewService *service.ReviewService,
) *AdminHandler {
	return &AdminHandler{
		userService:        userService,
		internshipService:  internshipService,
		applicationService: applicationService,
		reviewService:      reviewService,
	}
}

type adminStatsResponse struct {
	Students     int `json:"students"`
	Companies    int `json:"companies"`
	Internships  int `json:"internships"`
	Applications int `json:"applications"`
	Reviews      int `json:"reviews"`
}

// StatsHandler backs the admin dashboard counters.
func (h *AdminHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	internships, err := h.internshipService.List(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	applications, err := h.applicationService.CountAll(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	reviews, err := h.reviewService.CountAll(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	stats := adminStatsResponse{
		Internships:  len(internships),
		Applications: applications,
		Reviews:      reviews,
	}
	for _, user := range users {
		switch user.Role {
		case model.RoleStudent:
			stats.Students++
		case model.RoleCompany:
			stats.Companies++
		}
	}

	respondWithJSON(w, http.StatusOK, stats)
}
