package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qiniu/pulseboard/internal/dashboard/model"
	"github.com/rs/zerolog/log"
)

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: message},
	})
}

func badParameter(c *gin.Context, parameter, value, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{
		Error: model.ErrorDetail{
			Code:      model.ErrorCodeInvalidParameter,
			Message:   message,
			Parameter: parameter,
			Value:     value,
		},
	})
}

// writeError maps a service error onto the API error envelope.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		abort(c, http.StatusNotFound, model.ErrorCodeNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidRange):
		abort(c, http.StatusBadRequest, model.ErrorCodeInvalidRange, err.Error())
	case errors.Is(err, model.ErrInvalidArgument):
		abort(c, http.StatusBadRequest, model.ErrorCodeInvalidParameter, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		// client went away; nothing useful to send
		c.Abort()
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		abort(c, http.StatusInternalServerError, model.ErrorCodeInternalError, "internal server error")
	}
}
