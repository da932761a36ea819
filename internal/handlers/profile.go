package handlers

import (
	"net/http"

	"portfolio/internal/models"

	"github.com/gin-gonic/gin"
)

// profileUpdateRequest lists the updatable profile fields. Anything else in
// the body, including a userId, is ignored; ownership comes from the token.
type profileUpdateRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
}

// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  models.Portfolio
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/profile [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	p, err := h.services.Profile.Get(c.Request.Context(), sessionUserID(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  profileUpdateRequest  true  "Fields to update"
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/profile [put]
// @Security     BearerAuth
func (h *Handler) updateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	user, err := h.services.Profile.Update(c.Request.Context(), sessionUserID(c), models.UserUpdate{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary      Get a user's reduced profile
// @Tags         profile
// @Produce      json
// @Param        userId  path  string  true  "User id"
// @Success      200  {object}  models.PublicProfile
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/profile/{userId} [get]
// @Security     BearerAuth
func (h *Handler) getProfileByID(c *gin.Context) {
	p, err := h.services.Profile.GetPublic(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Public portfolio by username
// @Tags         portfolio
// @Produce      json
// @Param        username  path  string  true  "Public username"
// @Success      200  {object}  models.Portfolio
// @Failure      404  {object}  map[string]string
// @Router       /portfolio/{username} [get]
func (h *Handler) getPortfolio(c *gin.Context) {
	p, err := h.services.Portfolio.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
