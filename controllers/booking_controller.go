package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"booking-api/models"
	"booking-api/services"
	"booking-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

type bookingPayload struct {
	GuestFirstName   string          `json:"guestFirstName"`
	GuestLastName    string          `json:"guestLastName"`
	NumberOfAdults   int             `json:"numberOfAdults"`
	NumberOfChildren int             `json:"numberOfChildren"`
	CheckInDate      string          `json:"checkInDate"`
	CheckOutDate     string          `json:"checkOutDate"`
	Status           string          `json:"status"`
	RoomID           *uint           `json:"roomId"`
	GuestDetails     json.RawMessage `json:"guestDetails"`
}

type bookingStatusPayload struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	Status    string `json:"status"`
}

// GetBookings (GET /booking): every booking with its room attached.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Service.GetAll()
	if err != nil {
		log.Printf("list bookings failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking (POST /booking): 201 with Location header, 400 when the
// room reference is missing.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if payload.RoomID == nil {
		utils.JSONError(c, http.StatusBadRequest, "roomId is required")
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

	booking := models.Booking{
		GuestFirstName:   payload.GuestFirstName,
		GuestLastName:    payload.GuestLastName,
		NumberOfAdults:   payload.NumberOfAdults,
		NumberOfChildren: payload.NumberOfChildren,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		Status:           payload.Status,
		RoomID:           payload.RoomID,
	}
	if len(payload.GuestDetails) > 0 {
		booking.GuestDetails = datatypes.JSON(payload.GuestDetails)
	}

	if err := bc.Service.Create(&booking); err != nil {
		if errors.Is(err, services.ErrRoomRequired) {
			utils.JSONError(c, http.StatusBadRequest, "roomId is required")
			return
		}
		log.Printf("create booking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking")
		return
	}

	c.Header("Location", fmt.Sprintf("/booking/%d", booking.ID))
	c.JSON(http.StatusCreated, booking)
}

// UpdateBookingStatus (PUT /booking): overwrites the status field. An
// unknown bookingId is a bad request, matching the original surface.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	var payload bookingStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	booking, err := bc.Service.UpdateStatus(payload.BookingID, payload.Status)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusBadRequest, "booking not found")
			return
		}
		log.Printf("update booking %d status failed: %v", payload.BookingID, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update booking")
		return
	}
	c.JSON(http.StatusOK, booking)
}
