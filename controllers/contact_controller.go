package controllers

import (
	"net/http"
	"strconv"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactController handles HTTP requests for the contact form.
type ContactController struct {
	service services.ContactService
	logger  *zap.Logger
}

func NewContactController(service services.ContactService, logger *zap.Logger) *ContactController {
	return &ContactController{service: service, logger: logger}
}

// SubmitContact processes a contact form submission.
// POST /api/contact
func (cc *ContactController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Missing or empty fields are rejected here, before any store write or
	// email. The checkout handler deliberately does not do this.
	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	if _, err := cc.service.Submit(c.Request.Context(), &req); err != nil {
		cc.logger.Error("contact submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}

// ListContacts returns stored submissions, newest first.
// GET /api/contact
func (cc *ContactController) ListContacts(c *gin.Context) {
	page, perPage := paginationParams(c)

	subs, total, err := cc.service.List(c.Request.Context(), page, perPage)
	if err != nil {
		cc.logger.Error("contact listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": subs,
		"total":    total,
		"page":     page,
		"per_page": perPage,
	})
}

func paginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("perPage", "20"))
	if err != nil || perPage < 1 {
		perPage = 20
	}
	return page, perPage
}
