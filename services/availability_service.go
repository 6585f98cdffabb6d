package services

import (
	"fmt"
	"strings"
	"time"

	"booking-api/models"

	"gorm.io/gorm"
)

// StayRequest describes a candidate stay: party size plus the requested
// date range.
type StayRequest struct {
	Adults   int
	Children int
	CheckIn  time.Time
	CheckOut time.Time
}

// AvailabilityService answers stay requests. It is a read-only path: no call
// here mutates the store, so a request is safe to repeat.
//
// Two overlap modes exist. The default ("legacy") reproduces the historical
// behavior exactly: a room is excluded when any of its bookings has a
// check-in or check-out on or after the requested check-in, ignoring the
// requested check-out entirely. Strict mode applies the conventional
// interval-overlap test instead and can be enabled with
// AVAILABILITY_STRICT_OVERLAP=true. Switching modes changes observable
// results, which is why legacy remains the default.
type AvailabilityService struct {
	DB     *gorm.DB
	Strict bool
}

func NewAvailabilityService(db *gorm.DB, strict bool) *AvailabilityService {
	return &AvailabilityService{DB: db, Strict: strict}
}

// StrictOverlapFromEnv reports whether strict interval overlap was requested
// via AVAILABILITY_STRICT_OVERLAP.
func StrictOverlapFromEnv(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "true" || value == "1"
}

// FindRoom returns the first room that fits the request, or nil when none
// qualifies. Selection is first-match, not best-match, and an empty result
// is not an error.
func (s *AvailabilityService) FindRoom(req StayRequest) (*models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Preload("Amenities").Preload("Bookings").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms for availability: %w", err)
	}
	for i := range rooms {
		if s.fits(&rooms[i], req) {
			return &rooms[i], nil
		}
	}
	return nil, nil
}

func (s *AvailabilityService) fits(room *models.Room, req StayRequest) bool {
	if room.AdultCapacity < req.Adults || room.ChildCapacity < req.Children {
		return false
	}
	for i := range room.Bookings {
		if s.conflicts(&room.Bookings[i], req) {
			return false
		}
	}
	return true
}

func (s *AvailabilityService) conflicts(booking *models.Booking, req StayRequest) bool {
	if s.Strict {
		return booking.CheckInDate.Before(req.CheckOut) && booking.CheckOutDate.After(req.CheckIn)
	}
	// Legacy test: only the requested check-in is consulted.
	return !booking.CheckInDate.Before(req.CheckIn) || !booking.CheckOutDate.Before(req.CheckIn)
}
