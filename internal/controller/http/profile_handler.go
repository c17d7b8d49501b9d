package http

import (
	"net/http"

	"linkup/internal/usecase"
	"linkup/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
	mediaUseCase   usecase.MediaUseCase
	logger         *logger.Logger
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase, mediaUseCase usecase.MediaUseCase, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		mediaUseCase:   mediaUseCase,
		logger:         logger,
	}
}

// GetProfile godoc
// @Summary      Fetch a profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Profile ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUseCase.Get(c.Param("id"))
	if err != nil {
		respondError(c, statusFor(err), err.Error())
		return
	}

	// Image stores a path; clients render the resolved URL.
	respondOK(c, http.StatusOK, gin.H{
		"profile":  profile,
		"imageUrl": h.mediaUseCase.ResolveDisplayURL(profile.Image),
	})
}

// UpdateProfile godoc
// @Summary      Edit the signed-in user's profile
// @Description  Partial update; omitted fields stay untouched.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.UpdateProfileInput true "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Router       /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var input usecase.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.profileUseCase.Update(userID, input); err != nil {
		respondError(c, statusFor(err), err.Error())
		return
	}

	respondOK(c, http.StatusOK, gin.H{"userId": userID})
}
