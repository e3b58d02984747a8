package httpserver

import (
	"context"

	routingHTTP "crm-intent-router/internal/routing/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupRoutingDomain registers /api/v1/{route,analyze,explain,tools}.
func (srv HTTPServer) setupRoutingDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := routingHTTP.New(srv.l, srv.routingUC)
	routingHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Routing domain registered")
	return nil
}
