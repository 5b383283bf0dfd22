// internal/handler/application.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/garasilabs/maganghub/internal/form"
	"github.com/garasilabs/maganghub/internal/middleware"
	"github.com/garasilabs/maganghub/internal/model"
	"github.com/garasilabs/maganghub/internal/service"
)

type ApplicationHandler struct {
	applicationService *service.ApplicationService
	userService        *service.UserService
}

func NewApplicationHandler(applicationService *service.ApplicationService, userService *service.UserService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		userService:        userService,
	}
}

// SubmitHandler accepts the completed application form from a student.
func (h *ApplicationHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
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

	var input service.SubmitApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	application, err := h.applicationService.Submit(r.Context(), studentID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, application)
}

type validateStepRequest struct {
	Step int       `json:"step"`
	Data form.Data `json:"data"`
}

type validateStepResponse struct {
	BaseResponse
	Errors form.Errors `json:"errors,omitempty"`
}

// ValidateStepHandler runs one wizard step's checklist so the client can gate
// advancement server-side. Ok is true when the step passes.
func (h *ApplicationHandler) ValidateStepHandler(w http.ResponseWriter, r *http.Request) {
	var req validateStepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	step := form.Step(req.Step)
	if !step.Valid() {
		respondWithError(w, http.StatusBadRequest, "Invalid wizard step")
		return
	}

	errs := form.ValidateStep(step, &req.Data)
	respondWithJSON(w, http.StatusOK, validateStepResponse{
		BaseResponse: BaseResponse{Ok: len(errs) == 0},
		Errors:       errs,
	})
}

// MineHandler lists the calling student's applications with postings joined.
func (h *ApplicationHandler) MineHandler(w http.ResponseWriter, r *http.Request) {
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

	applications, err := h.applicationService.ForStudent(r.Context(), studentID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, applications)
}

// InboxHandler lists applications against the calling company's postings.
func (h *ApplicationHandler) InboxHandler(w http.ResponseWriter, r *http.Request) {
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

	applications, err := h.applicationService.ForCompany(r.Context(), companyID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, applications)
}

type updateStatusRequest struct {
	Status model.ApplicationStatus `json:"status"`
}

// UpdateStatusHandler lets the owning company move an application to a new
// status.
func (h *ApplicationHandler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
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
		respondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	actor, err := h.userService.GetUser(r.Context(), actorID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	application, err := h.applicationService.UpdateStatus(r.Context(), id, req.Status, actor)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, application)
}

// CancelHandler withdraws the calling student's pending application.
func (h *ApplicationHandler) CancelHandler(w http.ResponseWriter, r *http.Request) {
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

	id, err := idParam(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	if err := h.applicationService.Cancel(r.Context(), id, studentID); err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
