package redis

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"portal-server/db"
	"portal-server/models/exams"
	"portal-server/models/rooms"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var queryDate = time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)

func sampleDays() []rooms.RawDaySchedule {
	return []rooms.RawDaySchedule{{
		Date: "2024-07-01",
		RoomTypeBlocks: []rooms.RawRoomTypeBlock{{
			RoomTypeName: "Labor",
			HourSlots:    rooms.RawHourSlots{"3": {From: "10:00", To: "11:00", RoomsCsv: "G308, G309"}},
		}},
	}}
}

func TestRedisPortalDAO_FreeRoomsRoundTrip(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisPortalDAO(mockClient, time.Hour, nil)

	// Act
	require.NoError(t, dao.SetFreeRooms(queryDate, sampleDays()))
	got, err := dao.GetFreeRooms(queryDate)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sampleDays(), got)

	// Verify data stored under the dated key
	storedValue, err := mockClient.Get("free_rooms_v1:2024-07-01")
	require.NoError(t, err)
	var stored []rooms.RawDaySchedule
	require.NoError(t, json.Unmarshal([]byte(storedValue), &stored))
	assert.Equal(t, "2024-07-01", stored[0].Date)
}

func TestRedisPortalDAO_CacheMiss(t *testing.T) {
	dao := NewRedisPortalDAO(db.NewMockRedisClient(context.Background()), 0, nil)

	days, err := dao.GetFreeRooms(queryDate)
	assert.NoError(t, err)
	assert.Nil(t, days)

	list, err := dao.GetExams()
	assert.NoError(t, err)
	assert.Nil(t, list)
}

func TestRedisPortalDAO_CorruptEntry(t *testing.T) {
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisPortalDAO(mockClient, 0, nil)
	_ = mockClient.Set(EXAMS_KEY, "{not json", 0)

	_, err := dao.GetExams()
	assert.Error(t, err)
}

func TestRedisPortalDAO_ExamsRoundTrip(t *testing.T) {
	dao := NewRedisPortalDAO(db.NewMockRedisClient(context.Background()), 0, nil)
	list := []exams.RawExam{{Title: "Analysis", RegistrationDate: "2024-05-02", RegistrationTime: "14:30", AllowedAidsRaw: "'A'"}}

	require.NoError(t, dao.SetExams(list))
	got, err := dao.GetExams()
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestRedisPortalDAO_ListAndDeleteFreeRooms(t *testing.T) {
	dao := NewRedisPortalDAO(db.NewMockRedisClient(context.Background()), 0, nil)
	require.NoError(t, dao.SetFreeRooms(queryDate, sampleDays()))
	require.NoError(t, dao.SetFreeRooms(queryDate.AddDate(0, 0, 1), sampleDays()))
	require.NoError(t, dao.SetExams(nil))

	dates, err := dao.ListCachedFreeRoomsDates()
	require.NoError(t, err)
	sort.Strings(dates)
	assert.Equal(t, []string{"2024-07-01", "2024-07-02"}, dates)

	require.NoError(t, dao.DeleteFreeRooms("2024-07-01"))
	days, err := dao.GetFreeRooms(queryDate)
	require.NoError(t, err)
	assert.Nil(t, days)
}
