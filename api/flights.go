package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airport-pps/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type registerFlightRequest struct {
	FlightNumber       string    `json:"flightNumber" binding:"required"`
	Origin             string    `json:"origin" binding:"required"`
	Destination        string    `json:"destination" binding:"required"`
	ScheduledDeparture time.Time `json:"scheduledDeparture" binding:"required"`
	Status             string    `json:"status"`
	Gate               string    `json:"gate"`
}

var flightNotFound = errorTitles{notFound: "Flight not found"}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:flightNumber", h.get)
	router.GET("/:flightNumber/manifest", h.manifest)
	router.GET("/:flightNumber/stats", h.stats)
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, errorTitles{})
		return
	}

	resp := make([]flightResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toFlightResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByNumber(c.Request.Context(), c.Param("flightNumber"))
	if err != nil {
		respondError(c, err, flightNotFound)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) create(c *gin.Context) {
	var req registerFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid flight", err.Error())
		return
	}

	flight, err := h.service.Register(c.Request.Context(), flights.RegisterFlightInput{
		FlightNumber:       req.FlightNumber,
		Origin:             req.Origin,
		Destination:        req.Destination,
		ScheduledDeparture: req.ScheduledDeparture,
		Status:             req.Status,
		Gate:               req.Gate,
	})
	if err != nil {
		respondError(c, err, errorTitles{rejected: "Flight registration not permitted"})
		return
	}
	c.JSON(http.StatusCreated, toFlightResponse(flight))
}

func (h *FlightHandler) manifest(c *gin.Context) {
	entries, err := h.service.Manifest(c.Request.Context(), c.Param("flightNumber"))
	if err != nil {
		respondError(c, err, flightNotFound)
		return
	}
	c.JSON(http.StatusOK, toManifestResponse(entries))
}

func (h *FlightHandler) stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context(), c.Param("flightNumber"))
	if err != nil {
		respondError(c, err, flightNotFound)
		return
	}
	c.JSON(http.StatusOK, toStatsResponse(stats))
}
