package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"booking-api/models"
	"booking-api/services"
	"booking-api/utils"

	"github.com/gin-gonic/gin"
	mysql "github.com/go-sql-driver/mysql"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{Service: service}
}

func roomIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, false
	}
	return uint(id), true
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// GetRooms (GET /rooms): every room with its amenity list.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Service.GetAll()
	if err != nil {
		log.Printf("list rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom (GET /rooms/:id)
func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "room not found")
		return
	}

	room, err := rc.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		log.Printf("get room %d failed: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room")
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom (POST /rooms): 201 with Location header and the created record.
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := rc.Service.Create(&room); err != nil {
		if isDuplicateKey(err) {
			utils.JSONError(c, http.StatusConflict,
				fmt.Sprintf("room number %d already exists", room.RoomNumber))
			return
		}
		log.Printf("create room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room")
		return
	}

	c.Header("Location", fmt.Sprintf("/rooms/%d", room.ID))
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom (PUT /rooms/:id): overwrites the room fields and replaces the
// amenity set wholesale.
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "room not found")
		return
	}

	var input models.Room
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if _, err := rc.Service.Update(id, input); err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		log.Printf("update room %d failed: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true})
}

// DeleteRoom (DELETE /rooms/:id): 200 with the record's prior state.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "room not found")
		return
	}

	room, err := rc.Service.Delete(id)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		log.Printf("delete room %d failed: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	c.JSON(http.StatusOK, room)
}
