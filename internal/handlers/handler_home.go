package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Service banner
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router /example/helloworld [get]
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "school-ledger", "status": "ok"})
}
