// internal/handler/review.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/garasilabs/maganghub/internal/middleware"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/service"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateHandler appends a review by the calling student.
func (h *ReviewHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	studentID, err := claims.UserID()
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid token subject")
		return
	}

	var input service.AddReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	review, err := h.reviewService.Add(r.Context(), studentID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, review)
}

type companyReviewsResponse struct {
	Reviews       []*model.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
}

// ForCompanyHandler lists a company's reviews together with the average
// rating computed on read.
func (h *ReviewHandler) ForCompanyHandler(w http.ResponseWriter, r *http.Request) {
	companyID, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	reviews, err := h.reviewService.ForCompany(r.Context(), companyID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	average, err := h.reviewService.AverageRating(r.Context(), companyID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, companyReviewsResponse{
		Reviews:       reviews,
		AverageRating: average,
	})
}
