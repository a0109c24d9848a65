package handlers

import (
	"net/http"

	intconfig "restaurant/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		respondError(c, http.StatusInternalServerError, "database not connected")
		return
	}
	if err := intconfig.DB.PingContext(c.Request.Context()); err != nil {
		RespondDomainError(c, "check database", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}
