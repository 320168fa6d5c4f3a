package handlers

import (
	"net/http"

	"mingle-backend/internal/dto"
	"mingle-backend/internal/services"
	"mingle-backend/internal/utils"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Create godoc
// @Summary      Create profile
// @Description  Creates a profile. The id is generated unless the caller supplies one.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.ProfileRequest  true  "Profile payload"
// @Success      201      {object}  dto.ProfileResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/profiles [post]
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfileRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	p, err := h.profiles.Create(r.Context(), req.ToInput())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.NewProfileResponse(*p))
}

// Get godoc
// @Summary      Get profile
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "Profile id"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/profiles/{id} [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewProfileResponse(*p))
}

// List godoc
// @Summary      List profiles
// @Tags         profiles
// @Produce      json
// @Success      200  {array}   dto.ProfileResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/profiles [get]
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	ps, err := h.profiles.List(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewProfileListResponse(ps))
}

// Update godoc
// @Summary      Update profile
// @Description  Overwrites every mutable attribute. id and created_at are kept.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Profile id"
// @Param        payload  body      dto.ProfileRequest  true  "Profile payload"
// @Success      200      {object}  dto.ProfileResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/profiles/{id} [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfileRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	p, err := h.profiles.Update(r.Context(), r.PathValue("id"), req.ToInput())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewProfileResponse(*p))
}
