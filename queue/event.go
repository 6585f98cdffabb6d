// Package queue defines the domain events published to the message broker
// and the best-effort publisher behind them.
package queue

// BookingCreatedEvent is published after a booking is stored. It carries
// enough for downstream consumers to notify or log without querying the
// primary database.
type BookingCreatedEvent struct {
	BookingID     uint   `json:"booking_id"`
	ReferenceCode string `json:"reference_code"`
	GuestName     string `json:"guest_name"`
	RoomID        uint   `json:"room_id,omitempty"`
	RoomNumber    int    `json:"room_number,omitempty"`
	Status        string `json:"status,omitempty"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	CreatedAt     string `json:"created_at"`
}
