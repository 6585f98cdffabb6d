package services

import (
	"errors"
	"fmt"

	"booking-api/models"

	"gorm.io/gorm"
)

// RoomService owns rooms and their amenity lists.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Preload("Amenities").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	for i := range rooms {
		if rooms[i].Amenities == nil {
			rooms[i].Amenities = []models.Amenity{}
		}
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Amenities").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room %d: %w", id, err)
	}
	return &room, nil
}

// Create inserts the room together with its amenity list. Incoming amenity
// ids are discarded so every amenity row is freshly assigned.
func (s *RoomService) Create(room *models.Room) error {
	for i := range room.Amenities {
		room.Amenities[i].ID = 0
	}
	if err := s.DB.Create(room).Error; err != nil {
		return err
	}
	if room.Amenities == nil {
		room.Amenities = []models.Amenity{}
	}
	return nil
}

// Update overwrites number, capacities and price, and replaces the amenity
// set wholesale: the previously owned amenity rows are deleted and the new
// list is inserted. Partial amenity updates are not supported.
func (s *RoomService) Update(id uint, input models.Room) (*models.Room, error) {
	var room models.Room

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Amenities").First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", id, err)
		}

		if err := tx.Model(&room).Updates(map[string]interface{}{
			"room_number":    input.RoomNumber,
			"adult_capacity": input.AdultCapacity,
			"child_capacity": input.ChildCapacity,
			"price":          input.Price,
		}).Error; err != nil {
			return fmt.Errorf("failed to update room %d: %w", id, err)
		}

		if err := tx.Where("room_id = ?", room.ID).Delete(&models.Amenity{}).Error; err != nil {
			return fmt.Errorf("failed to clear amenities for room %d: %w", id, err)
		}

		for i := range input.Amenities {
			amenity := models.Amenity{RoomID: room.ID, Text: input.Amenities[i].Text}
			if err := tx.Create(&amenity).Error; err != nil {
				return fmt.Errorf("failed to create amenity for room %d: %w", id, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(id)
}

// Delete removes the room and its amenities, returning the record's prior
// state including the amenity list it owned.
func (s *RoomService) Delete(id uint) (*models.Room, error) {
	var room models.Room

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Amenities").First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", id, err)
		}
		if err := tx.Where("room_id = ?", room.ID).Delete(&models.Amenity{}).Error; err != nil {
			return fmt.Errorf("failed to delete amenities for room %d: %w", id, err)
		}
		if err := tx.Delete(&room).Error; err != nil {
			return fmt.Errorf("failed to delete room %d: %w", id, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if room.Amenities == nil {
		room.Amenities = []models.Amenity{}
	}
	return &room, nil
}
