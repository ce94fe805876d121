package portal

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"portal-server/config"
	"portal-server/models"
	"portal-server/util"
)

// PortalApiClientMock serves the backend responses stored under a resources directory.
type PortalApiClientMock struct {
	resourcesDir string
}

// NewPortalApiClientMock creates a new instance of PortalApiClientMock
func NewPortalApiClientMock(resourcesDir string) *PortalApiClientMock {
	return &PortalApiClientMock{resourcesDir: resourcesDir}
}

// GetFreeRooms ignores date and returns the stored free-rooms fixture.
func (c *PortalApiClientMock) GetFreeRooms(ctx context.Context, date time.Time) (*models.FreeRoomsResponse, error) {
	response, err := util.ReadFreeRoomsResponseFromJSON(filepath.Join(c.resourcesDir, config.FREE_ROOMS_RESPONSE_RESOURCE))
	if err != nil {
		return nil, fmt.Errorf("could not read free rooms response from json: %w", err)
	}
	return response, nil
}

// GetExams returns the stored exams fixture.
func (c *PortalApiClientMock) GetExams(ctx context.Context) (*models.ExamsResponse, error) {
	response, err := util.ReadExamsResponseFromJSON(filepath.Join(c.resourcesDir, config.EXAMS_RESPONSE_RESOURCE))
	if err != nil {
		return nil, fmt.Errorf("could not read exams response from json: %w", err)
	}
	return response, nil
}
