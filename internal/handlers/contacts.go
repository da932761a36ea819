package handlers

import (
	"net/http"

	"portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Value  string `json:"value"`
	UserID string `json:"userId"` // accepted, ignored
}

// @Summary      List own contacts
// @Tags         contacts
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, contacts"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/profile/contacts [get]
// @Security     BearerAuth
func (h *Handler) listContacts(c *gin.Context) {
	contacts, err := h.services.Contacts.List(c.Request.Context(), sessionUserID(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(contacts), "contacts": contacts})
}

// @Summary      Create contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body  contactRequest  true  "Contact payload"
// @Success      201  {object}  models.Contact
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/profile/contacts [post]
// @Security     BearerAuth
func (h *Handler) createContact(c *gin.Context) {
	var req contactRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	contact, err := h.services.Contacts.Create(c.Request.Context(), sessionUserID(c), service.ContactInput{
		Type:  req.Type,
		Value: req.Value,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// @Summary      Update contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body  contactRequest  true  "Contact payload with id"
// @Success      200  {object}  models.Contact
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/profile/contacts [put]
// @Security     BearerAuth
func (h *Handler) updateContact(c *gin.Context) {
	var req contactRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	contact, err := h.services.Contacts.Update(c.Request.Context(), sessionUserID(c), req.ID, service.ContactInput{
		Type:  req.Type,
		Value: req.Value,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

// @Summary      Delete contact
// @Tags         contacts
// @Produce      json
// @Param        id  query  string  true  "Contact id"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/profile/contacts [delete]
// @Security     BearerAuth
func (h *Handler) deleteContact(c *gin.Context) {
	if err := h.services.Contacts.Delete(c.Request.Context(), sessionUserID(c), c.Query("id")); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
