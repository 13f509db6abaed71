package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/airport-pps/internal/domain"
	"github.com/Domenick1991/airport-pps/internal/service/bags"
	"github.com/gin-gonic/gin"
)

type BagHandler struct {
	service bags.BagUseCase
}

type registerBagRequest struct {
	PassengerID  int64   `json:"passengerId" binding:"required,min=1"`
	BagTagNumber string  `json:"bagTagNumber" binding:"required"`
	WeightKg     float64 `json:"weightKg" binding:"required"`
}

func NewBagHandler(service bags.BagUseCase) *BagHandler {
	return &BagHandler{service: service}
}

func (h *BagHandler) Register(router *gin.RouterGroup) {
	router.GET("/passenger/:passengerId", h.listForPassenger)
	router.POST("", h.register)
}

func (h *BagHandler) listForPassenger(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("passengerId"), 10, 64)
	if err != nil || id < 1 {
		badRequest(c, "Invalid passenger id", "Passenger id must be a positive integer.")
		return
	}

	list, err := h.service.ListForPassenger(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, errorTitles{notFound: "Passenger not found"})
		return
	}
	c.JSON(http.StatusOK, toBagResponses(list))
}

func (h *BagHandler) register(c *gin.Context) {
	var req registerBagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid bag data", err.Error())
		return
	}
	if !domain.ValidBagTag(req.BagTagNumber) {
		badRequest(c, "Invalid bag data", "Bag tag number must be exactly 10 digits.")
		return
	}
	if req.WeightKg < 0.1 || req.WeightKg > domain.MaxBagWeightKg {
		badRequest(c, "Invalid bag data", "Bag weight must be between 0.1 and 32kg.")
		return
	}

	bag, err := h.service.Register(c.Request.Context(), bags.RegisterBagInput{
		PassengerID:  req.PassengerID,
		BagTagNumber: req.BagTagNumber,
		WeightKg:     req.WeightKg,
	})
	if err != nil {
		respondError(c, err, errorTitles{notFound: "Passenger not found", rejected: "Bag registration not permitted"})
		return
	}

	c.Header("Location", "/api/bagdrop/passenger/"+strconv.FormatInt(req.PassengerID, 10))
	c.JSON(http.StatusCreated, toBagResponse(bag))
}
