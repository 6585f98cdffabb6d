package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"booking-api/models"
	"booking-api/queue"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingService creates bookings against rooms and maintains their status.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// GetAll returns every booking with its room attached. A booking whose room
// reference never resolved keeps a nil room.
func (s *BookingService) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Preload("Room").Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// Create inserts the booking. A room reference is mandatory, but the id is
// resolved best-effort: an id that matches nothing still produces a booking
// carrying the reference as given.
func (s *BookingService) Create(booking *models.Booking) error {
	if booking.RoomID == nil {
		return ErrRoomRequired
	}

	var room models.Room
	if err := s.DB.Preload("Amenities").First(&room, *booking.RoomID).Error; err == nil {
		booking.Room = &room
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to resolve room %d: %w", *booking.RoomID, err)
	}

	booking.ReferenceCode = newReferenceCode()

	// The resolved room is attached for the response only; the row itself
	// must not be touched by this write.
	if err := s.DB.Omit("Room").Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	ev := queue.BookingCreatedEvent{
		BookingID:     booking.ID,
		ReferenceCode: booking.ReferenceCode,
		GuestName:     strings.TrimSpace(booking.GuestFirstName + " " + booking.GuestLastName),
		Status:        booking.Status,
		CheckIn:       booking.CheckInDate.Format("2006-01-02"),
		CheckOut:      booking.CheckOutDate.Format("2006-01-02"),
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if booking.RoomID != nil {
		ev.RoomID = *booking.RoomID
	}
	if booking.Room != nil {
		ev.RoomNumber = booking.Room.RoomNumber
	}
	go func() {
		if err := queue.PublishBookingCreated(context.Background(), ev); err != nil {
			log.Printf("warning: booking.created publish failed for booking %d: %v", ev.BookingID, err)
		}
	}()

	return nil
}

// UpdateStatus overwrites the status field in place. Status is an open
// string; any value may follow any other.
func (s *BookingService) UpdateStatus(id uint, status string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %d: %w", id, err)
	}

	if err := s.DB.Model(&booking).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking %d status: %w", id, err)
	}

	if booking.RoomID != nil {
		var room models.Room
		if err := s.DB.Preload("Amenities").First(&room, *booking.RoomID).Error; err == nil {
			booking.Room = &room
		}
	}
	return &booking, nil
}

func newReferenceCode() string {
	return "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
