package controllers

import (
	"log"
	"net/http"

	"booking-api/services"
	"booking-api/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	Service *services.AvailabilityService
}

func NewAvailabilityController(service *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Service: service}
}

type stayRequestPayload struct {
	NumberOfAdults   int    `json:"numberOfAdults"`
	NumberOfChildren int    `json:"numberOfChildren"`
	CheckInDate      string `json:"checkInDate" binding:"required"`
	CheckOutDate     string `json:"checkOutDate" binding:"required"`
}

// FindRoom (POST /get-rooms): a matching room, or an empty object when
// nothing fits. "Nothing available" is a valid result, never an error.
func (ac *AvailabilityController) FindRoom(c *gin.Context) {
	var payload stayRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	checkIn, err := services.ParseDate(payload.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := services.ParseDate(payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	room, err := ac.Service.FindRoom(services.StayRequest{
		Adults:   payload.NumberOfAdults,
		Children: payload.NumberOfChildren,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		log.Printf("availability search failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "availability search failed")
		return
	}

	if room == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, room)
}
