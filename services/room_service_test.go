package services

import (
	"testing"

	"booking-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomRoundTrip(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	room := models.Room{
		RoomNumber:    101,
		AdultCapacity: 2,
		ChildCapacity: 1,
		Price:         90,
		Amenities:     []models.Amenity{{Text: "WiFi"}},
	}
	require.NoError(t, svc.Create(&room))
	assert.NotZero(t, room.ID)

	got, err := svc.GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 101, got.RoomNumber)
	require.Len(t, got.Amenities, 1)
	assert.Equal(t, "WiFi", got.Amenities[0].Text)
	assert.NotZero(t, got.Amenities[0].ID)
}

func TestUpdateReplacesAmenities(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	room := models.Room{
		RoomNumber:    102,
		AdultCapacity: 2,
		ChildCapacity: 0,
		Price:         80,
		Amenities:     []models.Amenity{{Text: "WiFi"}, {Text: "Balcony"}},
	}
	require.NoError(t, svc.Create(&room))
	oldIDs := []uint{room.Amenities[0].ID, room.Amenities[1].ID}

	updated, err := svc.Update(room.ID, models.Room{
		RoomNumber:    103,
		AdultCapacity: 3,
		ChildCapacity: 2,
		Price:         120,
		Amenities:     []models.Amenity{{Text: "Sea view"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 103, updated.RoomNumber)
	assert.Equal(t, 3, updated.AdultCapacity)
	assert.Equal(t, 2, updated.ChildCapacity)
	assert.Equal(t, 120.0, updated.Price)

	require.Len(t, updated.Amenities, 1)
	assert.Equal(t, "Sea view", updated.Amenities[0].Text)
	assert.NotContains(t, oldIDs, updated.Amenities[0].ID)

	// The replaced amenity rows are gone, not merged.
	var count int64
	require.NoError(t, db.Model(&models.Amenity{}).Where("room_id = ?", room.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateMissingRoom(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	_, err := svc.Update(42, models.Room{RoomNumber: 1})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDeleteReturnsPriorStateThenNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	room := models.Room{
		RoomNumber:    201,
		AdultCapacity: 4,
		ChildCapacity: 2,
		Price:         160,
		Amenities:     []models.Amenity{{Text: "Kitchenette"}},
	}
	require.NoError(t, svc.Create(&room))

	deleted, err := svc.Delete(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 201, deleted.RoomNumber)
	require.Len(t, deleted.Amenities, 1)

	_, err = svc.GetByID(room.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	// Amenities do not outlive the room.
	var count int64
	require.NoError(t, db.Model(&models.Amenity{}).Where("room_id = ?", room.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteMissingRoom(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	_, err := svc.Delete(5)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetAllIsIdempotent(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	require.NoError(t, svc.Create(&models.Room{RoomNumber: 301, AdultCapacity: 2, Price: 75}))

	first, err := svc.GetAll()
	require.NoError(t, err)
	second, err := svc.GetAll()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
