package portal

import (
	"context"
	"errors"
	"time"

	"portal-server/models"
)

// ErrNoSession is returned when the backend rejects the session.
// Callers must keep it apart from malformed-payload errors.
var ErrNoSession = errors.New("portal: no valid session")

// PortalAPI defines the interface for interacting with the campus backend
type PortalAPI interface {
	GetFreeRooms(ctx context.Context, date time.Time) (*models.FreeRoomsResponse, error)
	GetExams(ctx context.Context) (*models.ExamsResponse, error)
}
