package models

import (
	"time"

	"gorm.io/gorm"
)

type Room struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomNumber    int     `gorm:"column:room_number;uniqueIndex" json:"roomNumber"`
	AdultCapacity int     `gorm:"column:adult_capacity" json:"adultCapacity"`
	ChildCapacity int     `gorm:"column:child_capacity" json:"childCapacity"`
	Price         float64 `json:"price"`

	// Amenities are owned by the room: replaced wholesale on update,
	// removed together with the room on delete.
	Amenities []Amenity `gorm:"foreignKey:RoomID" json:"amenities"`

	// Reverse lookup used only by the availability query. Never serialized.
	Bookings []Booking `gorm:"foreignKey:RoomID" json:"-"`
}
