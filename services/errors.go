// Package services holds the domain logic between the HTTP controllers and
// the gorm-backed store: room inventory, booking management and the
// availability search.
package services

import "errors"

// Sentinel errors shared across services. Controllers translate
// ErrRoomNotFound into 404 and the booking errors into 400 responses;
// anything else is treated as a store failure.
var (
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrBookingNotFound = errors.New("booking_not_found")
	ErrRoomRequired    = errors.New("room_required")
)
