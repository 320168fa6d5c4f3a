package handlers

import (
	"net/http"
	"strings"

	"mingle-backend/internal/apperr"
	"mingle-backend/internal/dto"
	"mingle-backend/internal/services"
	"mingle-backend/internal/utils"
)

type NetworkHandler struct {
	network *services.NetworkService
}

func NewNetworkHandler(network *services.NetworkService) *NetworkHandler {
	return &NetworkHandler{network: network}
}

// List godoc
// @Summary      List saved contacts
// @Description  Profiles saved by the owner, newest first.
// @Tags         network
// @Produce      json
// @Param        userId  query     string  true  "Owner id"
// @Success      200     {array}   dto.SavedContactResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/network [get]
func (h *NetworkHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.network.List(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NewSavedContactListResponse(contacts))
}

// Save godoc
// @Summary      Save contact
// @Description  Saving an already saved profile succeeds and changes nothing.
// @Tags         network
// @Accept       json
// @Produce      json
// @Param        payload  body      dto.NetworkSaveRequest  true  "Owner and profile"
// @Success      201      {object}  dto.NetworkStatusResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/network [post]
func (h *NetworkHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.NetworkSaveRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	req.UserID = strings.TrimSpace(req.UserID)
	req.ProfileID = strings.TrimSpace(req.ProfileID)
	if err := utils.ValidateStruct(req); err != nil {
		utils.WriteError(w, apperr.Validation("userId and profileId are required"))
		return
	}

	if err := h.network.Save(r.Context(), req.UserID, req.ProfileID); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.NetworkStatusResponse{Status: "saved"})
}

// Remove godoc
// @Summary      Remove contact
// @Description  Removing a profile that is not saved also succeeds.
// @Tags         network
// @Produce      json
// @Param        profileId  path      string  true  "Profile id"
// @Param        userId     query     string  true  "Owner id"
// @Success      200        {object}  dto.NetworkStatusResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/network/{profileId} [delete]
func (h *NetworkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	err := h.network.Remove(r.Context(), r.URL.Query().Get("userId"), r.PathValue("profileId"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.NetworkStatusResponse{Status: "removed"})
}
