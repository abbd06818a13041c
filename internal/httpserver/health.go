package httpserver

import (
	"github.com/gin-gonic/gin"

	"smart-task-scheduler/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Smart Task Scheduler is up"
	HealthVersion = "1.0.0"
	ServiceName   = "smart-task-scheduler"
)

func probeBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, probeBody("healthy"))
}

// readyCheck reports ready once routes are mapped.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, probeBody("ready"))
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, probeBody("alive"))
}
