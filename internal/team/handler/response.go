package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	teamModel "github.com/arenahub/tournament/internal/team/model"
)

// All registration responses share the {success, ...} JSON shape.

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Login required",
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}

func validationFailed(c *gin.Context, violations []teamModel.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"errors":  violations,
	})
}

func serverError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
	})
}
