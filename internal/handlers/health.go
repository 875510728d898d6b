package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "HRMS Lite API is running"})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "API healthy"})
}
