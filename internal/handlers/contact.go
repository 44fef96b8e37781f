package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carnage89/AlexeyR/internal/services"
)

type ContactHandler struct {
	contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (ch *ContactHandler) Create(c *gin.Context) {
	var req services.ContactInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid_contact_data", err)
		return
	}
	submission, err := ch.contactService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "contact_create_failed", errors.New("failed to create contact submission"))
		return
	}
	c.JSON(http.StatusCreated, submission)
}

func (ch *ContactHandler) List(c *gin.Context) {
	submissions, err := ch.contactService.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "contact_fetch_failed", errors.New("failed to fetch contact submissions"))
		return
	}
	c.JSON(http.StatusOK, submissions)
}
