package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"portal-server/api"
	"portal-server/models"
)

const (
	serviceName = "thiapp"
	formatJSON  = "json"

	methodRooms = "rooms"
	methodExams = "exams"
)

// PortalApiClient embeds the common HTTPClient
type PortalApiClient struct {
	*api.HTTPClient
	session string
}

// NewPortalApiClient creates a client that authenticates every call with session.
func NewPortalApiClient(httpClient *api.HTTPClient, session string) *PortalApiClient {
	return &PortalApiClient{
		HTTPClient: httpClient,
		session:    session,
	}
}

// GetFreeRooms retrieves the free rooms per day starting at date.
func (c *PortalApiClient) GetFreeRooms(ctx context.Context, date time.Time) (*models.FreeRoomsResponse, error) {
	params := map[string]interface{}{
		"day":   date.Day(),
		"month": int(date.Month()),
		"year":  date.Year(),
	}

	var response models.FreeRoomsResponse
	if err := c.call(ctx, methodRooms, params, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetExams retrieves the exams the session's student is registered for.
func (c *PortalApiClient) GetExams(ctx context.Context) (*models.ExamsResponse, error) {
	var response models.ExamsResponse
	if err := c.call(ctx, methodExams, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *PortalApiClient) call(ctx context.Context, method string, params map[string]interface{}, out interface{}) error {
	if c.session == "" {
		return ErrNoSession
	}

	body := map[string]interface{}{
		"service": serviceName,
		"method":  method,
		"format":  formatJSON,
		"session": c.session,
	}
	for k, v := range params {
		body[k] = v
	}

	var envelope models.PortalEnvelope
	if err := c.Request(ctx, "POST", "", nil, body, &envelope); err != nil {
		return fmt.Errorf("portal %s request failed: %w", method, err)
	}

	if envelope.Status != 0 {
		return envelopeError(method, envelope)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode portal %s data: %w", method, err)
	}
	return nil
}

func envelopeError(method string, envelope models.PortalEnvelope) error {
	var message string
	if err := json.Unmarshal(envelope.Data, &message); err != nil {
		message = string(envelope.Data)
	}
	if strings.Contains(strings.ToLower(message), "session") {
		return fmt.Errorf("portal %s: %s: %w", method, message, ErrNoSession)
	}
	return fmt.Errorf("portal %s returned status %d: %s", method, envelope.Status, message)
}
