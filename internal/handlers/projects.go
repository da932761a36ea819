package handlers

import (
	"net/http"

	"portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

type projectRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	ImageURL    string `json:"imageUrl"`
	UserID      string `json:"userId"` // accepted, ignored
}

func (r projectRequest) input() service.ProjectInput {
	return service.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
		ImageURL:    r.ImageURL,
	}
}

// @Summary      List own projects
// @Tags         projects
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, projects"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/profile/projects [get]
// @Security     BearerAuth
func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.services.Projects.List(c.Request.Context(), sessionUserID(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(projects), "projects": projects})
}

// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body  projectRequest  true  "Project payload"
// @Success      201  {object}  models.Project
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/profile/projects [post]
// @Security     BearerAuth
func (h *Handler) createProject(c *gin.Context) {
	var req projectRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	project, err := h.services.Projects.Create(c.Request.Context(), sessionUserID(c), req.input())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// @Summary      Update project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body  projectRequest  true  "Project payload with id"
// @Success      200  {object}  models.Project
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/profile/projects [put]
// @Security     BearerAuth
func (h *Handler) updateProject(c *gin.Context) {
	var req projectRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	project, err := h.services.Projects.Update(c.Request.Context(), sessionUserID(c), req.ID, req.input())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// @Summary      Delete project
// @Tags         projects
// @Produce      json
// @Param        id  query  string  true  "Project id"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/profile/projects [delete]
// @Security     BearerAuth
func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.services.Projects.Delete(c.Request.Context(), sessionUserID(c), c.Query("id")); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
