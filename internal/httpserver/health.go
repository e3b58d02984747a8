package httpserver

import (
	"crm-intent-router/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "crm-intent-router"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Reports service identity, dispatch mode and supported tools
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	tools := srv.routingUC.Tools(c.Request.Context())
	response.OK(c, gin.H{
		"status":          "healthy",
		"version":         HealthVersion,
		"service":         ServiceName,
		"dry_run":         tools.DryRun,
		"crm_configured":  tools.CRMConfigured,
		"supported_tools": tools.Tools,
	})
}

// readyCheck handles readiness check; the rule set is compiled before the server starts.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
