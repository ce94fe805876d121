package services

import (
	"context"
	"fmt"
	"time"

	"portal-server/api/portal"
	"portal-server/dao/redis"
	"portal-server/models/exams"
	"portal-server/models/rooms"

	"go.uber.org/zap"
)

// PortalService serves free rooms and exams from the cache, falling back to the backend.
type PortalService struct {
	portalDao  *redis.RedisPortalDAO
	portalApi  portal.PortalAPI
	aggregator *ScheduleAggregator
	normalizer *ExamNormalizer
	location   *time.Location
	logger     *zap.Logger
}

// NewPortalService constructs a new PortalService; loc is the backend's local time zone.
func NewPortalService(
	portalDao *redis.RedisPortalDAO,
	portalApi portal.PortalAPI,
	loc *time.Location,
	logger *zap.Logger) *PortalService {

	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortalService{
		portalDao:  portalDao,
		portalApi:  portalApi,
		aggregator: NewScheduleAggregator(loc),
		normalizer: NewExamNormalizer(loc),
		location:   loc,
		logger:     logger.With(zap.String("component", "portal_service")),
	}
}

// GetFreeRooms returns the rooms still free after now, grouped by day and hour slot.
func (ps *PortalService) GetFreeRooms(ctx context.Context, now time.Time) ([]rooms.DayAvailability, error) {
	raw, err := ps.rawFreeRooms(ctx, now)
	if err != nil {
		return nil, err
	}
	return ps.aggregator.Aggregate(raw, now)
}

// GetExams returns the exams that are TBD or still ahead of now.
func (ps *PortalService) GetExams(ctx context.Context, now time.Time) ([]exams.NormalizedExam, error) {
	raw, err := ps.rawExams(ctx)
	if err != nil {
		return nil, err
	}
	return ps.normalizer.Normalize(raw, now)
}

// FetchFreeRooms asks the backend for the free rooms starting at now's date and caches the payload.
func (ps *PortalService) FetchFreeRooms(ctx context.Context, now time.Time) ([]rooms.RawDaySchedule, error) {
	date := now.In(ps.location)
	resp, err := ps.portalApi.GetFreeRooms(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch free rooms: %w", err)
	}
	if err := ps.portalDao.SetFreeRooms(date, resp.Rooms); err != nil {
		ps.logger.Warn("could not cache free rooms", zap.Error(err))
	}
	return resp.Rooms, nil
}

// FetchExams asks the backend for the exam list and caches the payload.
func (ps *PortalService) FetchExams(ctx context.Context) ([]exams.RawExam, error) {
	resp, err := ps.portalApi.GetExams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exams: %w", err)
	}
	if err := ps.portalDao.SetExams(resp.Exams); err != nil {
		ps.logger.Warn("could not cache exams", zap.Error(err))
	}
	return resp.Exams, nil
}

func (ps *PortalService) rawFreeRooms(ctx context.Context, now time.Time) ([]rooms.RawDaySchedule, error) {
	cached, err := ps.portalDao.GetFreeRooms(now.In(ps.location))
	if err != nil {
		ps.logger.Warn("free rooms cache read failed, fetching", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}
	return ps.FetchFreeRooms(ctx, now)
}

func (ps *PortalService) rawExams(ctx context.Context) ([]exams.RawExam, error) {
	cached, err := ps.portalDao.GetExams()
	if err != nil {
		ps.logger.Warn("exams cache read failed, fetching", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}
	return ps.FetchExams(ctx)
}
