package api

import (
	"net/http"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/Domenick1991/airport-pps/internal/logger"
	"github.com/Domenick1991/airport-pps/internal/service/passengers"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service passengers.PassengerUseCase
	log     *logger.Logger
}

type checkInRequest struct {
	BookingReference string `json:"bookingReference" binding:"required"`
	SeatNumber       string `json:"seatNumber" binding:"required"`
}

type registerPassengerRequest struct {
	FullName         string `json:"fullName" binding:"required"`
	BookingReference string `json:"bookingReference" binding:"required"`
	FlightNumber     string `json:"flightNumber" binding:"required"`
}

func NewPassengerHandler(service passengers.PassengerUseCase, log *logger.Logger) *PassengerHandler {
	return &PassengerHandler{service: service, log: log}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	validRef := ValidateBookingReference(h.log)

	router.GET("", h.search)
	router.POST("", h.create)
	router.POST("/check-in", h.checkIn)
	router.GET("/:bookingReference", validRef, h.get)
	router.PATCH("/:bookingReference/board", validRef, h.board)
}

func (h *PassengerHandler) get(c *gin.Context) {
	p, err := h.service.Lookup(c.Request.Context(), c.Param("bookingReference"))
	if err != nil {
		respondError(c, err, errorTitles{notFound: "Passenger not found"})
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(p))
}

func (h *PassengerHandler) search(c *gin.Context) {
	var query passengers.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "Invalid search query", err.Error())
		return
	}

	found, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, errorTitles{})
		return
	}

	resp := make([]passengerResponse, 0, len(found))
	for i := range found {
		resp = append(resp, toPassengerResponse(&found[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req registerPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid passenger", err.Error())
		return
	}
	if !domain.ValidBookingReference(req.BookingReference) {
		badRequest(c, "Invalid passenger", "Booking reference must be exactly 6 alphanumeric characters.")
		return
	}

	p, err := h.service.Register(c.Request.Context(), passengers.RegisterPassengerInput{
		FullName:         req.FullName,
		BookingReference: req.BookingReference,
		FlightNumber:     req.FlightNumber,
	})
	if err != nil {
		respondError(c, err, errorTitles{rejected: "Passenger registration not permitted"})
		return
	}
	c.JSON(http.StatusCreated, toPassengerResponse(p))
}

func (h *PassengerHandler) checkIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid check-in request", err.Error())
		return
	}
	if !domain.ValidBookingReference(req.BookingReference) {
		badRequest(c, "Invalid check-in request", "Booking reference must be exactly 6 alphanumeric characters.")
		return
	}
	if !domain.ValidSeatNumber(req.SeatNumber) {
		badRequest(c, "Invalid check-in request", "Seat number must be row + letter, e.g. 14A.")
		return
	}

	p, err := h.service.CheckIn(c.Request.Context(), passengers.CheckInInput{
		BookingReference: req.BookingReference,
		SeatNumber:       req.SeatNumber,
	})
	if err != nil {
		respondError(c, err, errorTitles{notFound: "Passenger not found", rejected: "Check-in not permitted"})
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(p))
}

func (h *PassengerHandler) board(c *gin.Context) {
	result, err := h.service.Board(c.Request.Context(), c.Param("bookingReference"))
	if err != nil {
		respondError(c, err, errorTitles{notFound: "Passenger not found", rejected: "Boarding not permitted"})
		return
	}
	c.JSON(http.StatusOK, boardResponse{
		passengerResponse: toPassengerResponse(result.Passenger),
		EventPublished:    result.NotifyErr == nil,
	})
}
