package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode    string    `gorm:"column:reference_code;size:64" json:"referenceCode,omitempty"`
	GuestFirstName   string    `gorm:"column:guest_first_name;size:128" json:"guestFirstName"`
	GuestLastName    string    `gorm:"column:guest_last_name;size:128" json:"guestLastName"`
	NumberOfAdults   int       `gorm:"column:number_of_adults" json:"numberOfAdults"`
	NumberOfChildren int       `gorm:"column:number_of_children" json:"numberOfChildren"`
	CheckInDate      time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate     time.Time `gorm:"column:check_out_date" json:"checkOutDate"`

	// Free-form label; no transition graph is enforced.
	Status string `gorm:"column:status;size:64" json:"status,omitempty"`

	RoomID *uint `gorm:"column:room_id;index" json:"roomId,omitempty"`
	Room   *Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`

	// Optional extra guest payload, stored as sent.
	GuestDetails datatypes.JSON `gorm:"column:guest_details" json:"guestDetails,omitempty"`
}
