package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// errorTitles names the outcome for the caller. rejected covers both business
// rule conflicts and out-of-range values.
type errorTitles struct {
	notFound string
	rejected string
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrExternalDependency):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error, titles errorTitles) {
	status := statusFor(err)
	resp := errorResponse{Detail: err.Error()}
	switch status {
	case http.StatusNotFound:
		resp.Error = titles.notFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		resp.Error = titles.rejected
	case http.StatusBadGateway:
		resp.Error = "Upstream dependency unavailable"
	default:
		resp.Error = "Internal server error"
		resp.Detail = ""
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resp)
}

func badRequest(c *gin.Context, title, detail string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: title, Detail: detail})
}
