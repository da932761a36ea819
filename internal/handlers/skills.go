package handlers

import (
	"net/http"

	"portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// skillRequest carries skill fields for create/update. The userId field is
// accepted for wire compatibility but ignored; ownership comes from the token.
type skillRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IconURL string `json:"iconUrl"`
	UserID  string `json:"userId"`
}

// @Summary      List own skills
// @Tags         skills
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, skills"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/profile/skills [get]
// @Security     BearerAuth
func (h *Handler) listSkills(c *gin.Context) {
	skills, err := h.services.Skills.List(c.Request.Context(), sessionUserID(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(skills), "skills": skills})
}

// @Summary      Create skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        body  body  skillRequest  true  "Skill payload"
// @Success      201  {object}  models.Skill
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/profile/skills [post]
// @Security     BearerAuth
func (h *Handler) createSkill(c *gin.Context) {
	var req skillRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	skill, err := h.services.Skills.Create(c.Request.Context(), sessionUserID(c), service.SkillInput{
		Name:    req.Name,
		IconURL: req.IconURL,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

// @Summary      Update skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        body  body  skillRequest  true  "Skill payload with id"
// @Success      200  {object}  models.Skill
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/profile/skills [put]
// @Security     BearerAuth
func (h *Handler) updateSkill(c *gin.Context) {
	var req skillRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	skill, err := h.services.Skills.Update(c.Request.Context(), sessionUserID(c), req.ID, service.SkillInput{
		Name:    req.Name,
		IconURL: req.IconURL,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

// @Summary      Delete skill
// @Tags         skills
// @Produce      json
// @Param        id  query  string  true  "Skill id"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/profile/skills [delete]
// @Security     BearerAuth
func (h *Handler) deleteSkill(c *gin.Context) {
	if err := h.services.Skills.Delete(c.Request.Context(), sessionUserID(c), c.Query("id")); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
