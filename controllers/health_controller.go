package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping confirms the API is reachable. No validation, no side effects.
// GET /api/some-endpoint
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "API is working"})
}

// Root returns a plain liveness string.
// GET /
func Root(c *gin.Context) {
	c.String(http.StatusOK, "Server is running")
}
