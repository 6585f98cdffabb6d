package models

import (
	"time"

	"gorm.io/gorm"
)

// Amenity has no existence outside its room.
type Amenity struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomID uint   `gorm:"column:room_id;index" json:"-"`
	Text   string `gorm:"type:varchar(255)" json:"text"`
}
