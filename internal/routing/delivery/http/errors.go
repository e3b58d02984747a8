package http

import (
	"errors"
	"net/http"

	"crm-intent-router/internal/model"
	"crm-intent-router/internal/routing"
	"crm-intent-router/pkg/response"

	"github.com/gin-gonic/gin"
)

// writeError translates domain and use-case errors into the response envelope.
func (h *handler) writeError(c *gin.Context, err error) {
	if re, ok := model.AsRoutingError(err); ok {
		response.ErrorWithStatus(c, routingStatus(re.Kind), re, errorDetail{
			Kind:   re.Kind,
			Field:  re.Field,
			Reason: re.Reason,
		})
		return
	}

	switch {
	case errors.Is(err, routing.ErrEmptyText):
		response.Error(c, err)
	case errors.Is(err, routing.ErrCRMNotConfigured):
		response.ErrorWithStatus(c, http.StatusServiceUnavailable, err, nil)
	case errors.Is(err, routing.ErrDispatchFailed):
		response.ErrorWithStatus(c, http.StatusBadGateway, routing.ErrDispatchFailed, nil)
	default:
		h.l.Errorf(c.Request.Context(), "routing.delivery.http: unmapped error: %v", err)
		response.InternalError(c, err)
	}
}

// routingStatus is 422 when the utterance was understood but its arguments are unusable.
func routingStatus(kind model.ErrorKind) int {
	switch kind {
	case model.KindMissingRequiredSlot, model.KindRangeViolation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
