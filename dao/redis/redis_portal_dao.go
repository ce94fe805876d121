package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"portal-server/db"
	"portal-server/models/exams"
	"portal-server/models/rooms"
	"portal-server/util"

	"go.uber.org/zap"
)

// Keys hold raw backend payloads.
const FREE_ROOMS_KEY_FORMAT = "free_rooms_v1:%s"
const FREE_ROOMS_KEY_PREFIX = "free_rooms_v1:"
const EXAMS_KEY = "exams_v1"

// RedisPortalDAO caches raw backend payloads in Redis.
type RedisPortalDAO struct {
	client db.RedisClient
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisPortalDAO stores entries with the given ttl (0 keeps them until overwritten).
func NewRedisPortalDAO(client db.RedisClient, ttl time.Duration, logger *zap.Logger) *RedisPortalDAO {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisPortalDAO{
		client: client,
		ttl:    ttl,
		logger: logger.With(zap.String("component", "redis_portal_dao")),
	}
}

// SetFreeRooms caches the raw free-rooms days fetched for date.
func (dao *RedisPortalDAO) SetFreeRooms(date time.Time, days []rooms.RawDaySchedule) error {
	key := fmt.Sprintf(FREE_ROOMS_KEY_FORMAT, util.FormatCalendarDate(date))
	data, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("failed to marshal free rooms for %s: %w", key, err)
	}
	if err := dao.client.Set(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set free rooms in redis: %w", err)
	}
	dao.logger.Debug("cached free rooms", zap.String("key", key), zap.Int("days", len(days)))
	return nil
}

// GetFreeRooms returns the cached raw days for date, or nil on a cache miss.
func (dao *RedisPortalDAO) GetFreeRooms(date time.Time) ([]rooms.RawDaySchedule, error) {
	key := fmt.Sprintf(FREE_ROOMS_KEY_FORMAT, util.FormatCalendarDate(date))
	str, err := dao.client.Get(key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get free rooms from redis: %w", err)
	}
	var days []rooms.RawDaySchedule
	if err := json.Unmarshal([]byte(str), &days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal free rooms JSON: %w", err)
	}
	return days, nil
}

// SetExams caches the raw exam list.
func (dao *RedisPortalDAO) SetExams(list []exams.RawExam) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal exams: %w", err)
	}
	if err := dao.client.Set(EXAMS_KEY, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set exams in redis: %w", err)
	}
	dao.logger.Debug("cached exams", zap.Int("exams", len(list)))
	return nil
}

// GetExams returns the cached raw exam list, or nil on a cache miss.
func (dao *RedisPortalDAO) GetExams() ([]exams.RawExam, error) {
	str, err := dao.client.Get(EXAMS_KEY)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exams from redis: %w", err)
	}
	var list []exams.RawExam
	if err := json.Unmarshal([]byte(str), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal exams JSON: %w", err)
	}
	return list, nil
}

// ListCachedFreeRoomsDates returns the query dates (YYYY-MM-DD) with cached free rooms.
func (dao *RedisPortalDAO) ListCachedFreeRoomsDates() ([]string, error) {
	keys, err := dao.client.Keys(FREE_ROOMS_KEY_PREFIX + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list free rooms keys: %w", err)
	}
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, strings.TrimPrefix(k, FREE_ROOMS_KEY_PREFIX))
	}
	return dates, nil
}

// DeleteFreeRooms drops the cached free rooms for a YYYY-MM-DD date.
func (dao *RedisPortalDAO) DeleteFreeRooms(date string) error {
	key := FREE_ROOMS_KEY_PREFIX + date
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete free rooms key %s: %w", key, err)
	}
	dao.logger.Info("deleted free rooms cache", zap.String("date", date))
	return nil
}
