package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/Domenick1991/airport-pps/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		err  error
		want int
	}{
		{err: domain.NotFoundf("passenger ABC123"), want: http.StatusNotFound},
		{err: domain.Conflictf("already boarded"), want: http.StatusConflict},
		{err: domain.InvalidArgumentf("weight"), want: http.StatusUnprocessableEntity},
		{err: domain.External("list flights", errors.New("connection refused")), want: http.StatusBadGateway},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

func TestRespondError_HidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.New("pq: secret internals"), errorTitles{})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(logger.NewNop()))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}
