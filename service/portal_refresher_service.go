package services

import (
	"context"
	"errors"
	"time"

	"portal-server/dao/redis"
	"portal-server/util"

	"go.uber.org/zap"
)

// PortalRefresherService periodically reloads the cached backend payloads.
type PortalRefresherService struct {
	portalService *PortalService
	portalDao     *redis.RedisPortalDAO
	logger        *zap.Logger
	now           func() time.Time
}

// NewPortalRefresherService constructs a new refresher with dependencies.
func NewPortalRefresherService(
	portalService *PortalService,
	portalDao *redis.RedisPortalDAO,
	logger *zap.Logger,
) *PortalRefresherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PortalRefresherService{
		portalService: portalService,
		portalDao:     portalDao,
		logger:        logger.With(zap.String("component", "portal_refresher")),
		now:           time.Now,
	}
}

// StartPeriodicJob launches the background loop at the given interval until ctx is done.
func (pr *PortalRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go pr.startPeriodicJob(ctx, interval)
}

func (pr *PortalRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			pr.logger.Info("stopping periodic refresher")
			return
		case <-ticker.C:
			pr.logger.Info("running periodic portal refresher job")
			if err := pr.RefreshPortalData(ctx, pr.now()); err != nil {
				pr.logger.Warn("RefreshPortalData returned error", zap.Error(err))
			} else {
				pr.logger.Info("RefreshPortalData completed successfully")
			}
		}
	}
}

// RefreshPortalData refetches free rooms and exams, then evicts free-rooms entries
// cached for earlier query dates. A failing fetch does not stop the other one.
func (pr *PortalRefresherService) RefreshPortalData(ctx context.Context, now time.Time) error {
	var errs []error

	if days, err := pr.portalService.FetchFreeRooms(ctx, now); err != nil {
		pr.logger.Warn("free rooms refresh failed", zap.Error(err))
		errs = append(errs, err)
	} else {
		pr.logger.Info("free rooms refreshed", zap.Int("days", len(days)))
	}

	if list, err := pr.portalService.FetchExams(ctx); err != nil {
		pr.logger.Warn("exams refresh failed", zap.Error(err))
		errs = append(errs, err)
	} else {
		pr.logger.Info("exams refreshed", zap.Int("exams", len(list)))
	}

	if err := pr.evictStaleFreeRooms(now); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (pr *PortalRefresherService) evictStaleFreeRooms(now time.Time) error {
	dates, err := pr.portalDao.ListCachedFreeRoomsDates()
	if err != nil {
		return err
	}
	today := util.FormatCalendarDate(now.In(pr.portalService.location))
	for _, date := range dates {
		// YYYY-MM-DD sorts chronologically
		if date >= today {
			continue
		}
		if err := pr.portalDao.DeleteFreeRooms(date); err != nil {
			pr.logger.Warn("failed to evict stale free rooms", zap.String("date", date), zap.Error(err))
		}
	}
	return nil
}
