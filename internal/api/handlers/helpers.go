package handlers

import (
	"attractions-service/internal/api/dto"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.ErrorResponse{Detail: msg})
}
