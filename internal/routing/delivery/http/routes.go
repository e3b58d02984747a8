package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/route", h.Route)
	rg.POST("/analyze", h.Analyze)
	rg.POST("/explain", h.Explain)
	rg.GET("/tools", h.Tools)
}
