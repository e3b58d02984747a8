package http

import (
	"github.com/gin-gonic/gin"

	"crm-intent-router/pkg/response"
)

// Route godoc
// @Summary     Route an utterance
// @Description Classifies a CRM utterance into one tool and extracts its arguments.
// @Tags        Routing
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Utterance"
// @Success     200  {object} routeResp
// @Failure     400  {object} response.Resp "Rejected or unrecognized utterance"
// @Failure     422  {object} response.Resp "Missing required slot or value out of range"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Route(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newRouteResp(output))
}

// Analyze godoc
// @Summary     Route and dispatch an utterance
// @Description Routes the utterance and calls the CRM action for the chosen tool.
// @Description With dry_run (the default) the would-be call is returned instead.
// @Tags        Routing
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Utterance and dispatch mode"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Rejected or unrecognized utterance"
// @Failure     422  {object} response.Resp "Missing required slot or value out of range"
// @Failure     502  {object} response.Resp "CRM call failed"
// @Failure     503  {object} response.Resp "CRM not configured"
// @Router      /api/v1/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Explain godoc
// @Summary     Explain routing
// @Description Returns guard results, the matched tier and pattern, every extracted slot and the final outcome.
// @Tags        Routing
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Utterance"
// @Success     200  {object} explainResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/explain [POST]
func (h *handler) Explain(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Explain(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, output)
}

// Tools godoc
// @Summary     List tools
// @Description Lists supported tools in classification order with the dispatch mode.
// @Tags        Routing
// @Produce     json
// @Success     200 {object} toolsResp
// @Router      /api/v1/tools [GET]
func (h *handler) Tools(c *gin.Context) {
	response.OK(c, h.newToolsResp(h.uc.Tools(c.Request.Context())))
}
