package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/healthcheck", c.GetHealthcheck)
}

// GetHealthcheck
// @Summary Service health status
// @Description Report storage connectivity and host resource usage
// @Tags system
// @Produce json
// @Success 200 {object} HealthStatus
// @Failure 500 {object} map[string]string
// @Router /healthcheck [get]
func (c *HealthcheckController) GetHealthcheck(ctx *gin.Context) {
	status, err := c.healthcheckService.GetHealthStatus()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check service health"})
		return
	}

	ctx.JSON(http.StatusOK, status)
}
