package handlers

import (
	"net/http"

	"mingle-backend/internal/dto"
	"mingle-backend/internal/qr"
	"mingle-backend/internal/utils"
)

type QRHandler struct {
	gen *qr.Generator
}

func NewQRHandler(gen *qr.Generator) *QRHandler {
	return &QRHandler{gen: gen}
}

// Get godoc
// @Summary      Profile QR code
// @Description  PNG data URL encoding the profile's share link. The profile is not looked up.
// @Tags         qr
// @Produce      json
// @Param        profileId  path      string  true  "Profile id"
// @Success      200        {object}  dto.QRResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/qr/{profileId} [get]
func (h *QRHandler) Get(w http.ResponseWriter, r *http.Request) {
	code, err := h.gen.Generate(r.PathValue("profileId"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.QRResponse{QR: code.DataURL, URL: code.URL})
}
